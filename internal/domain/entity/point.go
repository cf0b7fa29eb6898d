package entity

import "fmt"

// Point координаты пикселя в системе изображения (0,0 — левый верхний угол)
type Point struct {
	X int
	Y int
}

// String возвращает точку в виде "(x, y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
