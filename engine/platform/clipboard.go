package platform

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/core"
)

// Clipboard implements ui.Clipboard on the system clipboard. Reads run off
// the main thread and come back through post as a core.EventPaste.
type Clipboard struct {
	post func(core.Event)
	log  *zap.Logger
}

func NewClipboard(post func(core.Event), log *zap.Logger) *Clipboard {
	if log == nil {
		log = zap.NewNop()
	}
	if clipboard.Unsupported {
		log.Warn("system clipboard unavailable")
	}
	return &Clipboard{post: post, log: log}
}

func (c *Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *Clipboard) RequestPaste() {
	go func() {
		text, err := clipboard.ReadAll()
		if err != nil {
			c.log.Warn("clipboard read failed", zap.Error(err))
			return
		}
		if text == "" {
			return
		}
		c.post(core.EventPaste{Text: text})
	}()
}
