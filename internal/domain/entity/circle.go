package entity

// Circle найденный круг маркера: центр и радиус в пикселях.
type Circle struct {
	Center Point `json:"center"`
	Radius int   `json:"radius"`
}
