package events

import "github.com/thesn0wdev/portfolio/internal/logging"

type PaletteTracer struct{}

type PanelTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Palette = PaletteTracer{}
	Panel   = PanelTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (PaletteTracer) Toggle(open bool, source string) {
	logging.Trace("palette.toggle", map[string]interface{}{"open": open, "source": source})
}

func (PaletteTracer) Close(source string) {
	logging.Trace("palette.close", map[string]interface{}{"source": source})
}

func (PaletteTracer) Query(query string, matches int) {
	logging.Trace("palette.query", map[string]interface{}{"query": query, "matches": matches})
}

func (PaletteTracer) Highlight(index int) {
	logging.Trace("palette.highlight", map[string]interface{}{"index": index})
}

func (PaletteTracer) Confirm(id, title, source string) {
	logging.Trace("palette.confirm", map[string]interface{}{"id": id, "title": title, "source": source})
}

func (PaletteTracer) NoResults(query string) {
	logging.Trace("palette.no-results", map[string]interface{}{"query": query})
}

func (PanelTracer) Select(id string) {
	logging.Trace("panel.select", map[string]interface{}{"id": id})
}

func (PanelTracer) Cursor(id string, cursor int) {
	logging.Trace("panel.cursor", map[string]interface{}{"id": id, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
