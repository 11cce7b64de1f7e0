package core

// CellRange is a half-open block of grid cells: [MinX,MaxX) x [MinY,MaxY)
type CellRange struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports a range covering no cells
func (r CellRange) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Count returns the number of cells covered
func (r CellRange) Count() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}
