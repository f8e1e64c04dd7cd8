package postgres

// Таблица и порядок колонок для COPY; порядок совпадает с полями domain.Media.
const mediaTable = "media"

var mediaColumns = []string{"title", "added_year", "added_date", "description", "userid", "videoid"}
