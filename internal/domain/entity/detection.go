package entity

// Detection хранит итог поиска маркера в одном файле.
type Detection struct {
	Path        string // путь к исходному файлу
	ImageWidth  int    // ширина изображения
	ImageHeight int    // высота изображения
	Marker      Circle // самый большой найденный круг
}

// Target возвращает точку, в которую нужно кликнуть.
func (d Detection) Target() Point {
	return d.Marker.Center
}
