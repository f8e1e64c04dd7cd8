//go:generate mockgen -source=../media_repository.go -destination=./mock_media_repository.go -package=mocks
//go:generate mockgen -source=../media_writer.go     -destination=./mock_media_writer.go     -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks
//go:generate mockgen -source=../media_read_service.go -destination=./mock_media_read_service.go -package=mocks

package mocks
