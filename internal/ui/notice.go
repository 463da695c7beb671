package ui

import "github.com/quill8/shelf/internal/mutate"

// notice is the transient status-line message for the latest mutation
// outcome. The seq counter ties each expiry timer to the notice it was
// started for, so a newer notice is never cleared by an older timer.
type notice struct {
	text    string
	level   mutate.Level
	visible bool
	seq     int
}

func (n *notice) show(msg mutate.Notice) {
	n.seq++
	n.text = msg.Text
	n.level = msg.Level
	n.visible = true
}

func (n *notice) expire(seq int) {
	if seq == n.seq {
		n.visible = false
	}
}

func (n *notice) render(styles Styles) string {
	if !n.visible {
		return ""
	}
	if n.level == mutate.LevelError {
		return styles.DangerText.Render(n.text)
	}
	return styles.SuccessText.Render(n.text)
}
