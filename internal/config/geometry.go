package config

import (
	"math"

	"github.com/go-logr/logr"
	"github.com/google/cel-go/cel"
	"github.com/pkg/errors"
)

// Rect is a resolved window placement in screen cells.
type Rect struct {
	X, Y, Width, Height int
}

type expression struct {
	name     string
	source   string
	program  cel.Program
	fallback cel.Program
}

// Geometry evaluates the message box expressions. Expressions are compiled
// once; evaluation happens on every Resolve so placement follows the current
// screen size.
type Geometry struct {
	x, y, width, height expression
	log                 logr.Logger
}

// NewGeometry compiles the four placement expressions. Expressions may use
// the integer variables width and height.
func NewGeometry(box MessageBox, log logr.Logger) (*Geometry, error) {
	env, err := cel.NewEnv(
		cel.Variable("width", cel.IntType),
		cel.Variable("height", cel.IntType),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create expression environment")
	}

	g := &Geometry{log: log}
	fields := []struct {
		dst      *expression
		name     string
		source   string
		fallback string
	}{
		{&g.x, "x", box.X, DefaultMessageBoxX},
		{&g.y, "y", box.Y, DefaultMessageBoxY},
		{&g.width, "width", box.Width, DefaultMessageBoxWidth},
		{&g.height, "height", box.Height, DefaultMessageBoxHeight},
	}
	for _, field := range fields {
		program, err := compile(env, field.source)
		if err != nil {
			return nil, errors.Wrapf(err, "messageBox.%s %q", field.name, field.source)
		}
		fallback, err := compile(env, field.fallback)
		if err != nil {
			return nil, errors.Wrapf(err, "default messageBox.%s", field.name)
		}
		*field.dst = expression{name: field.name, source: field.source, program: program, fallback: fallback}
	}
	return g, nil
}

func compile(env *cel.Env, source string) (cel.Program, error) {
	ast, iss := env.Compile(source)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	return env.Program(ast)
}

// Resolve evaluates every expression for a screen of the given size.
func (g *Geometry) Resolve(screenWidth, screenHeight int) Rect {
	vars := map[string]any{
		"width":  int64(screenWidth),
		"height": int64(screenHeight),
	}
	return Rect{
		X:      g.eval(g.x, vars),
		Y:      g.eval(g.y, vars),
		Width:  g.eval(g.width, vars),
		Height: g.eval(g.height, vars),
	}
}

func (g *Geometry) eval(expr expression, vars map[string]any) int {
	value, err := evalInt(expr.program, vars)
	if err == nil {
		return value
	}
	g.log.Error(err, "message box expression failed, using default", "field", expr.name, "expression", expr.source)
	value, err = evalInt(expr.fallback, vars)
	if err != nil {
		return 0
	}
	return value
}

func evalInt(program cel.Program, vars map[string]any) (int, error) {
	out, _, err := program.Eval(vars)
	if err != nil {
		return 0, err
	}
	switch v := out.Value().(type) {
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.Errorf("expression produced %v", v)
		}
		return int(math.Floor(v)), nil
	default:
		return 0, errors.Errorf("expression produced %T, want a number", v)
	}
}
