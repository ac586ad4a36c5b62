package catalog

// DesignType defines one category of output asset: its identity, the
// user-facing copy shown by clients, the schema the text model must conform
// to, and the system instruction that steers it. Definitions are immutable;
// the catalog is built once at process start.
type DesignType struct {
	ID                string
	Title             string
	Description       string
	PlaceholderPrompt string
	Schema            *Schema
	SystemInstruction string
}

// Catalog is a static registry of design types keyed by id.
type Catalog struct {
	types []DesignType
	byID  map[string]int
}

// New builds a catalog from the given definitions.
func New(types []DesignType) *Catalog {
	byID := make(map[string]int, len(types))
	for i, dt := range types {
		byID[dt.ID] = i
	}
	return &Catalog{types: types, byID: byID}
}

// Find returns the design type with the given id, if registered.
func (c *Catalog) Find(id string) (*DesignType, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.types[i], true
}

// All returns every registered design type in declaration order.
func (c *Catalog) All() []DesignType {
	return c.types
}

// Default returns the product catalog. Titles, descriptions and placeholder
// prompts are user-facing copy in Russian, reproduced from the product
// configuration.
func Default() *Catalog {
	return New([]DesignType{
		{
			ID:                "website",
			Title:             "Дизайн сайта",
			Description:       "Создайте полноценный макет сайта с мобильной и десктопной версией.",
			PlaceholderPrompt: `например, "Сайт для премиального барбершопа в стиле ретро-футуризма. Основные цвета: темно-синий и бронзовый."`,
			Schema:            websiteSchema,
			SystemInstruction: webDesignerInstruction,
		},
		{
			ID:                "app-design",
			Title:             "Дизайн приложений",
			Description:       "Визуализируйте ключевой экран вашего будущего мобильного приложения.",
			PlaceholderPrompt: `например, "Главный экран фитнес-приложения с трекером калорий. Минималистичный, темная тема."`,
			Schema:            genericImageAssetSchema("app-design"),
			SystemInstruction: uiUxArchitectInstruction,
		},
		{
			ID:                "marketing-kit",
			Title:             "Маркетинг кит",
			Description:       "Сгенерируйте ключевой слайд презентации о вашей компании.",
			PlaceholderPrompt: `например, "Слайд 'Наши Преимущества' для IT-компании. Инфографика, иконки, корпоративные цвета."`,
			Schema:            genericImageAssetSchema("marketing-kit"),
			SystemInstruction: marketingGuruInstruction,
		},
		{
			ID:                "logo",
			Title:             "Логотип",
			Description:       "Разработайте уникальный и запоминающийся логотип для вашего бренда.",
			PlaceholderPrompt: `например, "Логотип для кофейни 'Cosmic Brew'. Минимализм. Планета Сатурн вместо кофейной чашки."`,
			Schema:            genericImageAssetSchema("logo"),
			SystemInstruction: brandStrategistInstruction,
		},
		{
			ID:                "business-card",
			Title:             "Визитка",
			Description:       "Создайте стильный дизайн визитной карточки.",
			PlaceholderPrompt: `например, "Визитка для фотографа Ивана Петрова. Вертикальная, с одной стороны фото, с другой контакты. Черно-белый стиль."`,
			Schema:            businessCardSchema,
			SystemInstruction: printDesignMasterInstruction,
		},
		{
			ID:                "youtube-cover",
			Title:             "Обложка для YouTube",
			Description:       "Привлекающая внимание обложка для вашего видео.",
			PlaceholderPrompt: `например, "Обложка для видео 'Топ 10 Гаджетов 2024'. Яркие цвета, коллаж из гаджетов, крупный текст."`,
			Schema:            youtubeCoverSchema,
			SystemInstruction: viralContentSpecialistInstruction,
		},
		{
			ID:                "article-cover",
			Title:             "Обложка для статьи",
			Description:       "Иллюстрация, которая идеально дополнит ваш материал.",
			PlaceholderPrompt: `например, "Обложка для статьи о будущем AI. Абстрактная, в стиле киберпанк, неоновые цвета."`,
			Schema:            genericImageAssetSchema("article-cover"),
			SystemInstruction: publishingArtDirectorInstruction,
		},
		{
			ID:                "ad-creative",
			Title:             "Рекламный креатив",
			Description:       "Создайте визуал для таргетированной рекламы в соцсетях.",
			PlaceholderPrompt: `например, "Креатив для рекламы онлайн-курсов по йоге. Спокойные цвета, фото девушки в позе лотоса."`,
			Schema:            adCreativeSchema,
			SystemInstruction: marketingGuruInstruction,
		},
		{
			ID:                "poster",
			Title:             "Постер",
			Description:       "Дизайн плаката для мероприятия или рекламной кампании.",
			PlaceholderPrompt: `например, "Постер для музыкального фестиваля инди-музыки. Стиль швейцарской типографики, пастельные тона."`,
			Schema:            posterSchema,
			SystemInstruction: eventPromoterInstruction,
		},
		{
			ID:                "checklist",
			Title:             "Чек-лист",
			Description:       "Стильно оформите полезный чек-лист для вашей аудитории.",
			PlaceholderPrompt: `например, "Дизайн чек-листа 'Утренние ритуалы'. Минимализм, иконки, пастельно-зеленый цвет."`,
			Schema:            genericImageAssetSchema("checklist"),
			SystemInstruction: publishingArtDirectorInstruction,
		},
		{
			ID:                "lead-magnet",
			Title:             "Лид-магнит",
			Description:       "Создайте привлекательную обложку для вашего PDF-гайда или книги.",
			PlaceholderPrompt: `например, "Обложка для e-book 'Гид по продуктивности'. Чистый дизайн, яркий акцент, 3D иллюстрация."`,
			Schema:            leadMagnetSchema,
			SystemInstruction: publishingArtDirectorInstruction,
		},
	})
}
