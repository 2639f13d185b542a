// Command terratracer builds survey polygons from bearing/distance legs and
// exports them as KML, JSON, GeoJSON or a sectioned data file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KeyArgo/TerraTracer/internal/config"
	"github.com/KeyArgo/TerraTracer/internal/display"
	"github.com/KeyArgo/TerraTracer/internal/input"
	"github.com/KeyArgo/TerraTracer/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to terratracer.yaml (default: probe ./terratracer.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terratracer: %v\n", err)
		os.Exit(1)
	}

	sess, err := session.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terratracer: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	in := input.NewReader(os.Stdin, os.Stdout)
	pres := display.NewPresenter(os.Stdout)

	for {
		fmt.Println()
		fmt.Println("#########################")
		fmt.Println("###    TerraTracer    ###")
		fmt.Println("#########################")
		fmt.Println()
		fmt.Println("1. Create Custom Geometric Polygon")
		fmt.Println("   - Delineate mining claims, property boundaries, agricultural fields.")
		fmt.Println("2. Convert Saved JSON File to KML")
		fmt.Println("3. Exit")
		fmt.Println()

		choice, ok := in.ReadChoice("Enter your choice (1/2/3): ", []string{"1", "2", "3"})
		if !ok || choice == "3" {
			fmt.Println("\nExiting program. Goodbye!")
			return
		}

		switch choice {
		case "1":
			runCreatePolygon(sess, in, pres)
		case "2":
			runConvertJSONToKML(sess, in, pres)
		}
	}
}
