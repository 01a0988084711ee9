/*
Routedemo runs the router over a scene description and prints the
resulting polylines.

Usage:

	routedemo [flags] [input]

The flags are:

		-c path
		    Read the scene from path instead of standard input.
		-format json|yaml
		    Scene file format (default "json").
		-dump
		    Print each route's path in human-readable arrow form
		    instead of as JSON.

If the input arg is not set, the scene is read from standard input.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aumouvantsillage/autobus"
)

var (
	configPath string
	format     string
	dump       bool
)

func init() {
	flag.StringVar(&configPath, "c", "", "path to a scene file")
	flag.StringVar(&format, "format", "json", "scene file format: json or yaml")
	flag.BoolVar(&dump, "dump", false, "print paths in human-readable form")
}

// scene is the on-disk description of a router configuration: a grid
// step, a list of obstacle rectangles, and a list of routes. It is
// the routedemo equivalent of the teacher's Topology document.
type scene struct {
	GridStep  float64    `json:"gridStep" yaml:"gridStep"`
	Diagonal  bool       `json:"diagonal" yaml:"diagonal"`
	Bus       bool       `json:"bus" yaml:"bus"`
	Obstacles []rect     `json:"obstacles" yaml:"obstacles"`
	Routes    []routeDef `json:"routes" yaml:"routes"`
}

type rect struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

type point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type routeDef struct {
	Start point `json:"start" yaml:"start"`
	Goal  point `json:"goal" yaml:"goal"`
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	scenePath := configPath
	if scenePath == "" && flag.NArg() > 0 {
		scenePath = flag.Arg(0)
	}

	var in io.Reader = os.Stdin
	if scenePath != "" {
		f, err := os.Open(scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scene file %s: %s\n", scenePath, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scene: %s\n", err)
		return 1
	}

	sc, err := decodeScene(raw, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scene: %s\n", err)
		return 1
	}

	router, paths, err := runScene(sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error routing scene: %s\n", err)
		return 1
	}
	_ = router

	if dump {
		for i, path := range paths {
			fmt.Fprintf(os.Stdout, "route %d: ", i)
			autobus.DumpPath(os.Stdout, path)
		}
		return 0
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return encodeOrFail(enc, paths)
}

func decodeScene(raw []byte, format string) (scene, error) {
	var sc scene
	switch format {
	case "yaml":
		err := yaml.Unmarshal(raw, &sc)
		return sc, err
	case "json", "":
		err := json.Unmarshal(raw, &sc)
		return sc, err
	default:
		return sc, fmt.Errorf("unknown format %q", format)
	}
}

// runScene builds a Router from sc, runs one routing pass, and
// collects every route's path in registration order.
func runScene(sc scene) (*autobus.Router, [][]autobus.Point, error) {
	opts := autobus.NewOptions(sc.GridStep)
	opts.Diagonal = sc.Diagonal
	opts.Bus = sc.Bus

	router, err := autobus.NewRouter(opts)
	if err != nil {
		return nil, nil, err
	}

	for _, o := range sc.Obstacles {
		router.AddObstacle(autobus.Rectangle{
			Left: o.Left, Top: o.Top, Right: o.Right, Bottom: o.Bottom,
		})
	}

	paths := make([][]autobus.Point, len(sc.Routes))
	for i, rd := range sc.Routes {
		i := i
		start := autobus.NewPointEndpoint(autobus.Point{X: rd.Start.X, Y: rd.Start.Y})
		goal := autobus.NewPointEndpoint(autobus.Point{X: rd.Goal.X, Y: rd.Goal.Y})
		router.AddRoute(start, goal, func(route *autobus.Route, path []autobus.Point) {
			paths[i] = path
		})
	}

	router.Route()
	return router, paths, nil
}

func encodeOrFail(enc *json.Encoder, paths [][]autobus.Point) int {
	if err := enc.Encode(paths); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %s\n", err)
		return 1
	}
	return 0
}
