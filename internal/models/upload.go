package models

// Upload - принятый, но еще не привязанный к строке файл.
// Живет от приема multipart-формы до фиксации в слоте либо удаления.
type Upload struct {
	Kind     SlotKind
	Filename string // имя внутри каталога вида, без пути
	Path     string // путь в хранилище: "<dir>/<filename>"
	Size     int64
}
