// Package matrix turns decoded images into per-channel intensity matrices.
package matrix

// Matrix is a row-major grid of 8-bit intensities. Rows follow the image
// top to bottom, columns left to right.
type Matrix struct {
	Rows int
	Cols int
	Data []uint8 // len = Rows * Cols
}

// New returns a zeroed rows x cols matrix.
func New(rows, cols int) Matrix {
	return Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]uint8, rows*cols),
	}
}

// At returns the value at row r, column c.
func (m Matrix) At(r, c int) uint8 {
	return m.Data[r*m.Cols+c]
}

// Row returns row r. The slice aliases the matrix storage.
func (m Matrix) Row(r int) []uint8 {
	return m.Data[r*m.Cols : (r+1)*m.Cols]
}
