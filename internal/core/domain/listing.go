package domain

// ReviewScores - вторичные оценки по категориям. Все поля опциональны:
// у объявлений без отзывов эти значения отсутствуют в датасете.
type ReviewScores struct {
	Accuracy      *float64
	Cleanliness   *float64
	Checkin       *float64
	Communication *float64
	Location      *float64
	Value         *float64
}

// Listing - объект размещения. Загружается один раз при старте
// и не изменяется в течение жизни приложения.
type Listing struct {
	ID           int64
	Name         string
	Neighbourhood string
	PropertyType string

	Accommodates int     // вместимость, всегда >= 1
	Bedrooms     float64
	Bathrooms    float64

	Latitude  float64
	Longitude float64

	Rating       *float64 // общий рейтинг, может отсутствовать
	ReviewScores ReviewScores
}
