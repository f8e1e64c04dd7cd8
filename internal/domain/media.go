package domain

// Media — запись о видео, полученная из топика и сохраняемая пачкой в хранилище.
// Все поля передаются как есть, без преобразований.
type Media struct {
	Title       string `json:"title"`
	AddedYear   string `json:"added_year"`
	AddedDate   string `json:"added_date"`
	Description string `json:"description"`
	UserID      string `json:"userid"`
	VideoID     string `json:"videoid"`
}
