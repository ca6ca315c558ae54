package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/viant/nqtree/geom"
	"github.com/viant/vec/search"
	sqlite "modernc.org/sqlite"
)

// RegisterRegionFunctions registers nq_l2, nq_in_box and nq_in_sphere with the
// driver so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
//
//	nq_l2(a BLOB, b BLOB) REAL
//	nq_in_box(p BLOB, min BLOB, max BLOB) INTEGER
//	nq_in_sphere(p BLOB, center BLOB, radius REAL) INTEGER
//
// Containment is strict, matching geom.Box and geom.Sphere. A NULL argument
// yields NULL.
func RegisterRegionFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("nq_l2", 2, nqL2Impl)
	_ = sqlite.RegisterDeterministicScalarFunction("nq_in_box", 3, nqInBoxImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("nq_in_sphere", 3, nqInSphereImpl)
	return nil
}

func asEmbedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return geom.DecodeEmbedding(v)
	default:
		return nil, fmt.Errorf("nq: unsupported argument type %T for point; want BLOB", arg)
	}
}

func asPoints(name string, args []driver.Value, n int) ([]geom.Point, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", name, n, len(args))
	}
	points := make([]geom.Point, 0, n)
	for _, arg := range args {
		vec, err := asEmbedding(arg)
		if err != nil {
			return nil, err
		}
		if vec == nil {
			return nil, nil
		}
		points = append(points, geom.FromFloat32s(vec))
	}
	return points, nil
}

func asFloat(arg driver.Value) (float64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("nq: unsupported argument type %T for radius; want REAL", arg)
	}
}

func boolValue(b bool) driver.Value {
	if b {
		return int64(1)
	}
	return int64(0)
}

func nqL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("nq_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asEmbedding(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asEmbedding(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("nq_l2: %w: %d vs %d", geom.ErrDimensionMismatch, len(a), len(b))
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

func nqInBoxImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	points, err := asPoints("nq_in_box", args, 3)
	if err != nil || points == nil {
		return nil, err
	}
	box, err := geom.NewBox(points[1], points[2])
	if err != nil {
		return nil, err
	}
	if len(points[0]) != box.Dims() {
		return nil, fmt.Errorf("nq_in_box: %w: point %d vs box %d", geom.ErrDimensionMismatch, len(points[0]), box.Dims())
	}
	return boolValue(box.Contains(points[0])), nil
}

func nqInSphereImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("nq_in_sphere: expected 3 arguments, got %d", len(args))
	}
	points, err := asPoints("nq_in_sphere", args[:2], 2)
	if err != nil || points == nil {
		return nil, err
	}
	radius, ok, err := asFloat(args[2])
	if err != nil || !ok {
		return nil, err
	}
	sphere := geom.NewSphere(points[1], radius)
	if len(points[0]) != sphere.Dims() {
		return nil, fmt.Errorf("nq_in_sphere: %w: point %d vs center %d", geom.ErrDimensionMismatch, len(points[0]), sphere.Dims())
	}
	return boolValue(sphere.Contains(points[0])), nil
}
