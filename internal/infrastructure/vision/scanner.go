package vision

import (
	"context"
	"math"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// PerimeterSamples число углов, которыми аппроксимируется окружность.
const PerimeterSamples = 360

// perimeter косинусы и синусы углов i*2π/360, i = 0..359
var perimeter = func() [PerimeterSamples][2]float64 {
	var p [PerimeterSamples][2]float64
	step := 2 * math.Pi / PerimeterSamples
	for i := range p {
		a := float64(i) * step
		p[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	return p
}()

// Scanner ищет самый большой закрашенный круг цвета маркера.
type Scanner struct {
	Color entity.RGB
}

// NewScanner создаёт сканер для entity.MarkerColor.
func NewScanner() *Scanner {
	return &Scanner{Color: entity.MarkerColor}
}

// IsMarker сообщает, что (x, y) внутри изображения и цвет точно равен цвету маркера.
func (s *Scanner) IsMarker(img *entity.Image, x, y int) bool {
	c, ok := img.At(x, y)
	return ok && c == s.Color
}

// MaxRadius верхняя граница роста радиуса для изображения.
func MaxRadius(img *entity.Image) int {
	r := min(img.Width(), img.Height()) / 2
	return max(r, 1)
}

// ringIsMarker проверяет все точки окружности радиуса r с центром (x, y).
func (s *Scanner) ringIsMarker(img *entity.Image, x, y, r int) bool {
	radius := float64(r)
	for _, cs := range &perimeter {
		px := x + int(math.Floor(cs[0]*radius))
		py := y + int(math.Floor(cs[1]*radius))
		if !s.IsMarker(img, px, py) {
			return false
		}
	}
	return true
}

// RadiusAt возвращает радиус круга с центром в (x, y): радиус растёт,
// пока вся окружность текущего радиуса состоит из пикселей маркера.
// Одиночный пиксель маркера даёт радиус 1, не-маркер — 0.
func (s *Scanner) RadiusAt(img *entity.Image, x, y int) int {
	if !s.IsMarker(img, x, y) {
		return 0
	}
	limit := MaxRadius(img)
	radius := 1
	for radius < limit && s.ringIsMarker(img, x, y, radius) {
		radius++
	}
	return radius
}

// FindMarker обходит изображение построчно и возвращает самый большой круг.
// При равных радиусах остаётся первый найденный.
func (s *Scanner) FindMarker(ctx context.Context, img *entity.Image) (entity.Circle, error) {
	var (
		best  entity.Circle
		found bool
	)

	for y := 0; y < img.Height(); y++ {
		if err := ctx.Err(); err != nil {
			return entity.Circle{}, err
		}
		for x := 0; x < img.Width(); x++ {
			radius := s.RadiusAt(img, x, y)
			if radius == 0 {
				continue
			}
			if !found || radius > best.Radius {
				best = entity.Circle{Center: entity.Point{X: x, Y: y}, Radius: radius}
				found = true
			}
		}
	}

	if !found {
		return entity.Circle{}, entity.ErrNoMarker
	}
	return best, nil
}

// Проверка реализации интерфейса
var _ port.MarkerDetector = (*Scanner)(nil)
