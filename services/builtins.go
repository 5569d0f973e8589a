package services

import (
	"path/filepath"

	"funcbox/funcs/imageproc"
	"funcbox/models"
)

// Names of the bundled functions.
const (
	GreeterName        = "greeter"
	ImageProcessorName = "image-processor"
)

// Builtins returns the function set bundled with this deployment. binDir is
// the directory holding the compiled function binaries.
func Builtins(binDir string) []models.BuiltinFunction {
	return []models.BuiltinFunction{
		{
			Name:        GreeterName,
			Description: "Returns a templated greeting message",
			Runtime:     "go",
			Command:     []string{filepath.Join(binDir, "greeter")},
			Params: []models.EnvParam{
				{Key: "NAME", Type: "string", Default: "World", Description: "Name to greet"},
			},
		},
		{
			Name:        ImageProcessorName,
			Description: "Downloads an image and applies resize, grayscale and Gaussian blur",
			Runtime:     "go",
			Command:     []string{filepath.Join(binDir, "imageprocessor")},
			Params: []models.EnvParam{
				{Key: "IMAGE_URL", Type: "string", Default: imageproc.DefaultImageURL, Description: "Image to download"},
				{Key: "WIDTH", Type: "integer", Default: "300", Description: "Output width in pixels"},
				{Key: "HEIGHT", Type: "integer", Default: "300", Description: "Output height in pixels"},
			},
		},
	}
}

// SeedRegistry registers every bundled function.
func SeedRegistry(registry *Registry, binDir string) error {
	for _, fn := range Builtins(binDir) {
		if err := registry.Register(fn); err != nil {
			return err
		}
	}
	return nil
}
