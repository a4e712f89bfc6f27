package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/geometry"
)

// Room is the collision side of the museum room.
type Room interface {
	InsideSolid(p rl.Vector3) bool
	TriangleIntersects(t geometry.Triangle) bool
	RecomputeBoundingBoxes()
	BoundingBoxes() []rl.BoundingBox
}

// Walker is the first-person controller.
type Walker interface {
	Teleport(p rl.Vector3) bool
	LookingAtWall() bool
}

// Museum is what the walkthrough commands act on. Nil toggles are skipped at registration.
type Museum struct {
	Grid     func(visible bool)
	FPS      func(show bool)
	MemAlloc func(show bool)
	Bounds   func(show bool)

	Room   Room
	Walker Walker
	// Print receives command output, one line per call.
	Print func(line string)
}

// RegisterMuseum adds help, the overlay toggles, probe, teleport and recompute to r.
func RegisterMuseum(r *Registry, m Museum) {
	if m.Print == nil {
		m.Print = func(string) {}
	}
	help := flag.NewFlagSet("help", flag.ContinueOnError)
	r.Register("help", help, func() error {
		m.Print("commands: " + strings.Join(r.Names(), ", "))
		return nil
	})
	registerToggle(r, "grid", m.Grid)
	registerToggle(r, "fps", m.FPS)
	registerToggle(r, "memalloc", m.MemAlloc)
	registerToggle(r, "bounds", m.Bounds)

	if m.Room != nil {
		registerProbe(r, m)
		recompute := flag.NewFlagSet("recompute", flag.ContinueOnError)
		r.Register("recompute", recompute, func() error {
			m.Room.RecomputeBoundingBoxes()
			m.Print(fmt.Sprintf("recomputed %d bounding boxes", len(m.Room.BoundingBoxes())))
			return nil
		})
	}
	if m.Walker != nil {
		teleport := flag.NewFlagSet("teleport", flag.ContinueOnError)
		r.Register("teleport", teleport, func() error {
			p, err := parseVector(teleport.Args())
			if err != nil {
				return fmt.Errorf("teleport: %w", err)
			}
			if !m.Walker.Teleport(p) {
				return fmt.Errorf("teleport: %s is blocked", formatVector(p))
			}
			m.Print("teleported to " + formatVector(p))
			return nil
		})
	}
}

// registerToggle adds "cmd <name> --show|--hide".
func registerToggle(r *Registry, name string, set func(bool)) {
	if set == nil {
		return
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	show := fs.Bool("show", false, "turn on")
	hide := fs.Bool("hide", false, "turn off")
	r.Register(name, fs, func() error {
		if *show == *hide {
			return fmt.Errorf("%s: use --show or --hide", name)
		}
		set(*show)
		return nil
	})
}

// registerProbe adds "cmd probe point x y z", "cmd probe look" and "cmd probe tri" with nine coordinates.
func registerProbe(r *Registry, m Museum) {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	r.Register("probe", fs, func() error {
		args := fs.Args()
		if len(args) == 0 {
			return errors.New("probe: missing point, look or tri")
		}
		switch args[0] {
		case "point":
			p, err := parseVector(args[1:])
			if err != nil {
				return fmt.Errorf("probe point: %w", err)
			}
			m.Print(fmt.Sprintf("point %s inside solid: %t", formatVector(p), m.Room.InsideSolid(p)))
		case "look":
			if m.Walker == nil {
				return errors.New("probe look: no walker")
			}
			m.Print(fmt.Sprintf("looking at wall: %t", m.Walker.LookingAtWall()))
		case "tri":
			if len(args) != 10 {
				return fmt.Errorf("probe tri: want 9 coordinates, got %d", len(args)-1)
			}
			var pts [3]rl.Vector3
			for i := range pts {
				p, err := parseVector(args[1+3*i : 4+3*i])
				if err != nil {
					return fmt.Errorf("probe tri: %w", err)
				}
				pts[i] = p
			}
			t := geometry.NewTriangle(pts[0], pts[1], pts[2])
			m.Print(fmt.Sprintf("triangle intersects: %t", m.Room.TriangleIntersects(t)))
		default:
			return fmt.Errorf("probe: unknown target %q", args[0])
		}
		return nil
	})
}

// parseVector reads exactly three coordinates.
func parseVector(args []string) (rl.Vector3, error) {
	if len(args) != 3 {
		return rl.Vector3{}, fmt.Errorf("want 3 coordinates, got %d", len(args))
	}
	var v [3]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("coordinate %q: %w", a, err)
		}
		v[i] = float32(f)
	}
	return rl.NewVector3(v[0], v[1], v[2]), nil
}

func formatVector(v rl.Vector3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
