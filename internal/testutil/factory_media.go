package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"

	"github.com/Gunvolt24/media_consumer/internal/domain"
	"github.com/bytedance/sonic"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeMedia — валидная запись со случайными идентификаторами.
func MakeMedia(opts ...func(*domain.Media)) domain.Media {
	m := domain.Media{
		Title:       "clip-" + UniqSuffix(),
		AddedYear:   "2015",
		AddedDate:   "2015-06-21",
		Description: "test clip",
		UserID:      "user-" + UniqSuffix(),
		VideoID:     "vid-" + UniqSuffix(),
	}
	for _, fn := range opts {
		fn(&m)
	}
	return m
}

func WithUser(userID string) func(*domain.Media) {
	return func(m *domain.Media) { m.UserID = userID }
}

func WithTitle(title string) func(*domain.Media) {
	return func(m *domain.Media) { m.Title = title }
}

// MakeBatch — n записей одного пользователя; заголовки "0".."n-1" задают порядок.
func MakeBatch(n int, userID string) []domain.Media {
	out := make([]domain.Media, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, MakeMedia(WithUser(userID), WithTitle(strconv.Itoa(i))))
	}
	return out
}

// MediaJSON — payload сообщения в том виде, в каком его пишет продюсер.
func MediaJSON(m domain.Media) []byte {
	raw, err := sonic.Marshal(m)
	if err != nil {
		panic(err)
	}
	return raw
}
