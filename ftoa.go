// Package cprintf formats floating-point numbers the way the C runtime's
// printf family does for the %f, %e and %g conversions, and provides a
// printf-compatible Sprintf built on top of it.
package cprintf

// AppendFloat appends the rendering of f described by req to dst and returns
// the extended buffer. On error dst is returned unchanged.
func AppendFloat(dst []byte, f float64, req RenderRequest) ([]byte, error) {
	if err := req.validate(); err != nil {
		return dst, err
	}
	return appendFloat(dst, decomposeFloat64(f), doublePrecision, &req), nil
}

// AppendFloat32 is like AppendFloat but keeps the shorter default precision
// of a single-precision value.
func AppendFloat32(dst []byte, f float32, req RenderRequest) ([]byte, error) {
	if err := req.validate(); err != nil {
		return dst, err
	}
	return appendFloat(dst, decomposeFloat32(f), singlePrecision, &req), nil
}

// FormatFloat returns the rendering of f described by req.
func FormatFloat(f float64, req RenderRequest) (string, error) {
	buf, err := AppendFloat(make([]byte, 0, 24), f, req)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// FormatFloat32 returns the rendering of f described by req.
func FormatFloat32(f float32, req RenderRequest) (string, error) {
	buf, err := AppendFloat32(make([]byte, 0, 24), f, req)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
