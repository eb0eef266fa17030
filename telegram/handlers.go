package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "github.com/viprogramm/audio11eleven/errors"
	"github.com/viprogramm/audio11eleven/logger"
	"github.com/viprogramm/audio11eleven/media"
	"github.com/viprogramm/audio11eleven/transcription"
)

// Bot reply texts.
const (
	startReply = "👋 Привет! Отправь мне голосовое сообщение, аудио файл или видео кружок, и я преобразую его в текст."

	transcriptPrefix = "📝 Транскрипция:\n\n"

	voiceAck       = "🎤 Обрабатываю голосовое сообщение..."
	audioAck       = "🎵 Обрабатываю аудио файл..."
	videoNoteAck   = "🎥 Обрабатываю видео кружок..."
	audioEmpty     = "❌ Не удалось распознать аудио."
	videoNoteEmpty = "❌ Не удалось распознать аудио из видео."
	audioError     = "❌ Произошла ошибка при обработке аудио."
	videoNoteError = "❌ Произошла ошибка при обработке видео кружка."
)

// Fetcher downloads remote media into memory.
type Fetcher interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// mediaKind describes one supported message type: its reply texts and how
// the MIME type of the payload is determined.
type mediaKind struct {
	name       string
	ack        string
	emptyReply string
	errorReply string
	// mimeType derives the payload MIME type from the resolved file URL.
	mimeType func(fileURL string) string
}

var (
	voiceKind = mediaKind{
		name:       "voice",
		ack:        voiceAck,
		emptyReply: audioEmpty,
		errorReply: audioError,
		mimeType:   func(string) string { return media.VoiceMIMEType },
	}
	audioKind = mediaKind{
		name:       "audio",
		ack:        audioAck,
		emptyReply: audioEmpty,
		errorReply: audioError,
		mimeType:   media.TypeByExtension,
	}
	videoNoteKind = mediaKind{
		name:       "video_note",
		ack:        videoNoteAck,
		emptyReply: videoNoteEmpty,
		errorReply: videoNoteError,
		mimeType:   func(string) string { return media.VideoNoteMIMEType },
	}
)

// Handlers processes incoming bot updates.
type Handlers struct {
	api      API
	fetcher  Fetcher
	provider transcription.Provider
	log      *logger.Logger
}

// NewHandlers creates the update handlers.
func NewHandlers(api API, fetcher Fetcher, provider transcription.Provider, log *logger.Logger) *Handlers {
	return &Handlers{
		api:      api,
		fetcher:  fetcher,
		provider: provider,
		log:      log.WithComponent("telegram"),
	}
}

// HandleUpdate dispatches a single update to the matching handler.
// Updates that carry no supported content are ignored.
func (h *Handlers) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		h.reply(ctx, msg.Chat.ID, startReply)
	case msg.Voice != nil:
		h.handleMedia(ctx, msg, voiceKind, msg.Voice.FileID)
	case msg.Audio != nil:
		h.handleMedia(ctx, msg, audioKind, msg.Audio.FileID)
	case msg.VideoNote != nil:
		h.handleMedia(ctx, msg, videoNoteKind, msg.VideoNote.FileID)
	}
}

// handleMedia runs the shared pipeline: acknowledge, resolve the file URL,
// download, transcribe, reply with the transcript or a failure message.
func (h *Handlers) handleMedia(ctx context.Context, msg *tgbotapi.Message, kind mediaKind, fileID string) {
	chatID := msg.Chat.ID
	fields := map[string]interface{}{
		logger.FieldOperation: kind.name,
		logger.FieldChatID:    chatID,
	}
	if msg.From != nil {
		fields[logger.FieldUserID] = msg.From.ID
		fields[logger.FieldUsername] = msg.From.UserName
	}
	h.log.Info("received media message", fields)

	// Acknowledge first so the user sees progress while we work.
	h.reply(ctx, chatID, kind.ack)

	if h.provider == nil || !h.provider.IsAvailable(ctx) {
		h.log.Error("transcription provider unavailable", fields)
		h.reply(ctx, chatID, kind.errorReply)
		return
	}

	url, err := h.api.FileURL(ctx, fileID)
	if err != nil {
		h.log.WithError(err).Error("failed to resolve file", fields)
		h.reply(ctx, chatID, kind.errorReply)
		return
	}

	data, err := h.fetcher.Download(ctx, url)
	if err != nil {
		h.log.WithError(apperrors.NetworkError(err)).Error("failed to download media", fields)
		h.reply(ctx, chatID, kind.errorReply)
		return
	}

	mimeType := kind.mimeType(url)
	result, err := h.provider.Transcribe(ctx, transcription.NewRequest(data, mimeType, kind.name))
	if err != nil {
		h.log.WithError(err).Error("transcription failed", fields)
		h.reply(ctx, chatID, kind.errorReply)
		return
	}

	if result.Text == "" {
		h.reply(ctx, chatID, kind.emptyReply)
		return
	}
	h.reply(ctx, chatID, transcriptPrefix+result.Text)
}

// reply sends a message and logs delivery failures; the pipeline never
// aborts because a reply did not go through.
func (h *Handlers) reply(ctx context.Context, chatID int64, text string) {
	if err := h.api.Reply(ctx, chatID, text); err != nil {
		h.log.WithError(err).Warn("failed to send reply", map[string]interface{}{
			logger.FieldChatID: chatID,
		})
	}
}
