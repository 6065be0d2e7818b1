package models

import "fmt"

// SlotKind - вид контента, хранящего одну файловую ссылку в одной колонке
type SlotKind string

const (
	SlotHomeVideo      SlotKind = "home_video"
	SlotBanner         SlotKind = "banner"
	SlotCategory       SlotKind = "category"
	SlotFeaturedTalent SlotKind = "featured_talent"
	SlotTestimonial    SlotKind = "testimonial"
)

// SlotDescriptor описывает, где живут файлы данного вида: таблица,
// разрешенные колонки и подкаталог хранилища
type SlotDescriptor struct {
	Table         string
	DefaultColumn string
	Columns       []string
	Dir           string
}

// slotRegistry - белый список видов. Таблицы и колонки никогда не приходят
// из запроса напрямую, только через этот реестр.
var slotRegistry = map[SlotKind]SlotDescriptor{
	SlotHomeVideo: {
		Table:         "homeVideo",
		DefaultColumn: "video_path",
		Columns:       []string{"video_path"},
		Dir:           "HomeVideo",
	},
	SlotBanner: {
		Table:         "banners",
		DefaultColumn: "image_path",
		Columns:       []string{"image_path"},
		Dir:           "banners",
	},
	SlotCategory: {
		Table:         "popular_categories",
		DefaultColumn: "avatar",
		Columns:       []string{"avatar"},
		Dir:           "categoryImg",
	},
	SlotFeaturedTalent: {
		Table:         "featured_talents",
		DefaultColumn: "profile_img",
		Columns:       []string{"profile_img", "image1", "image2", "image3"},
		Dir:           "featuredImg",
	},
	SlotTestimonial: {
		Table:         "testimonials",
		DefaultColumn: "avatar",
		Columns:       []string{"avatar"},
		Dir:           "testimonialsImg",
	},
}

// DescriptorFor возвращает описание вида слота
func DescriptorFor(kind SlotKind) (SlotDescriptor, bool) {
	d, ok := slotRegistry[kind]
	return d, ok
}

// SlotKinds возвращает все зарегистрированные виды
func SlotKinds() []SlotKind {
	kinds := make([]SlotKind, 0, len(slotRegistry))
	for k := range slotRegistry {
		kinds = append(kinds, k)
	}
	return kinds
}

// SlotKey адресует одну ячейку (таблица, строка, колонка)
type SlotKey struct {
	Kind   SlotKind
	RowID  uint
	Column string
}

// NewSlotKey строит ключ с колонкой по умолчанию
func NewSlotKey(kind SlotKind, rowID uint) SlotKey {
	d := slotRegistry[kind]
	return SlotKey{Kind: kind, RowID: rowID, Column: d.DefaultColumn}
}

// WithColumn возвращает копию ключа с другой колонкой
func (k SlotKey) WithColumn(column string) SlotKey {
	k.Column = column
	return k
}

// Valid проверяет, что вид зарегистрирован и колонка входит в белый список
func (k SlotKey) Valid() bool {
	d, ok := slotRegistry[k.Kind]
	if !ok || k.RowID == 0 {
		return false
	}
	for _, c := range d.Columns {
		if c == k.Column {
			return true
		}
	}
	return false
}

// Descriptor возвращает описание вида ключа
func (k SlotKey) Descriptor() SlotDescriptor {
	return slotRegistry[k.Kind]
}

func (k SlotKey) String() string {
	d := slotRegistry[k.Kind]
	if k.Column != "" && k.Column != d.DefaultColumn {
		return fmt.Sprintf("%s:%d.%s", k.Kind, k.RowID, k.Column)
	}
	return fmt.Sprintf("%s:%d", k.Kind, k.RowID)
}
