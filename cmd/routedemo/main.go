package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"orthorouter/core"
	"orthorouter/router"
)

type sceneRect struct {
	X, Y, Width, Height int
}

type scenePoint struct {
	X, Y int
}

type scenePath struct {
	Start      scenePoint
	End        scenePoint
	Bendpoints []scenePoint `json:"bendpoints,omitempty"`
}

type scene struct {
	ClientArea sceneRect
	Spacing    int
	Obstacles  []sceneRect
	Paths      []scenePath
}

func (p scenePoint) toCore() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

func (r sceneRect) toCore() core.Rectangle {
	return core.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

func loadScene(path string) (*scene, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene file")
	}
	var s scene
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, errors.Wrap(err, "decoding scene JSON")
	}
	return &s, nil
}

func buildRouter(s *scene) *router.Router {
	r := router.NewRouter()
	r.SetClientArea(router.StaticClientArea{Rect: s.ClientArea.toCore()})
	if s.Spacing > 0 {
		r.SetSpacing(s.Spacing)
	}
	for _, ob := range s.Obstacles {
		r.AddObstacle(ob.toCore())
	}
	return r
}

func addPaths(r *router.Router, s *scene) []*router.OrthogonalPath {
	paths := make([]*router.OrthogonalPath, len(s.Paths))
	for i, sp := range s.Paths {
		p := router.NewOrthogonalPath(nil)
		p.SetStartPoint(sp.Start.toCore())
		p.SetEndPoint(sp.End.toCore())
		if len(sp.Bendpoints) > 0 {
			bp := make([]core.Point, len(sp.Bendpoints))
			for j, b := range sp.Bendpoints {
				bp[j] = b.toCore()
			}
			p.SetBendpoints(bp)
		}
		r.AddPath(p)
		paths[i] = p
	}
	return paths
}

func run(inputFile, outputFile string) error {
	s, err := loadScene(inputFile)
	if err != nil {
		return err
	}
	r := buildRouter(s)
	paths := addPaths(r, s)
	r.Solve()

	routes := make([][]core.Point, len(paths))
	for i, p := range paths {
		routes[i] = p.Points
	}

	jsonData, err := json.MarshalIndent(routes, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding routed polylines")
	}

	if outputFile != "" {
		if err := ioutil.WriteFile(outputFile, jsonData, 0644); err != nil {
			return errors.Wrap(err, "writing output file")
		}
		fmt.Printf("Successfully routed %d path(s) to %s\n", len(routes), outputFile)
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func main() {
	var (
		inputFile  = flag.String("i", "", "Scene file path (client area, obstacles, paths as JSON)")
		outputFile = flag.String("o", "", "Output file path (default: stdout)")
	)
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: scene file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*inputFile, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
