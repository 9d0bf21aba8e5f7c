// testgen renders a small sample home with the Jennifer emitter.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syssam/hassgen/compiler/gen"
	"github.com/syssam/hassgen/compiler/gen/golang"
	"github.com/syssam/hassgen/compiler/load"
)

func main() {
	outDir, err := os.MkdirTemp("", "hassgen-testgen-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	metadata := []*load.EntityDomainMetadata{
		{
			Domain:            "light",
			CoreInterfaceName: "LightEntityCore",
			Entities: []*load.EntityMetaData{
				{ID: "light.kitchen", FriendlyName: "Kitchen"},
				{ID: "light.living_room_tv_backlight", FriendlyName: "TV Backlight"},
			},
			Attributes: []*load.AttributeMetaData{
				{JSONName: "brightness", Type: load.TypeNumber},
				{JSONName: "color_mode", Type: load.TypeString},
				{JSONName: "rgb_color", Type: load.TypeList},
			},
		},
		{
			Domain:              "sensor",
			IsNumeric:           true,
			EntityClassName:     "NumericSensorEntity",
			AttributesClassName: "NumericSensorAttributes",
			Entities: []*load.EntityMetaData{
				{ID: "sensor.outside_temperature", FriendlyName: "Outside"},
			},
			Attributes: []*load.AttributeMetaData{
				{JSONName: "unit_of_measurement", Type: load.TypeString},
			},
		},
		{
			Domain:   "sensor",
			Entities: []*load.EntityMetaData{{ID: "sensor.washer_status"}},
		},
	}

	config, err := gen.NewConfig(
		gen.WithTarget(outDir),
		gen.WithFeatures(gen.FeatureSplitOutput),
		gen.WithPlatformVersion("2024.1.0b3"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}

	generator := gen.NewGenerator(config)
	generator.WithEmitter(golang.NewEmitter(generator))

	fmt.Println("Generating code with Jennifer...")
	if err := generator.Generate(context.Background(), metadata); err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated files:")
	entries, err := os.ReadDir(outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list files: %v\n", err)
		os.Exit(1)
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		fmt.Printf("  %s (%d bytes)\n", e.Name(), info.Size())
	}

	fmt.Println("\n--- Sample: sensor_entities.go ---")
	content, err := os.ReadFile(filepath.Join(outDir, "sensor_entities.go"))
	if err == nil {
		lines := strings.Split(string(content), "\n")
		if len(lines) > 80 {
			lines = append(lines[:80], "... (truncated)")
		}
		fmt.Println(strings.Join(lines, "\n"))
	}

	m := generator.Metrics()
	fmt.Printf("\n%d files, %d bytes\n", m.FilesGenerated, m.TotalBytes)
	fmt.Printf("To inspect generated code: ls -la %s\n", outDir)
	fmt.Println("Done!")
}
