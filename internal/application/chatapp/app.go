// Package chatapp composes the client-side chat state: the active session, the
// server-held history, persona preferences, the theme and the panel navigator.
//
// App is owned by a single UI loop. Operations that need the network are split
// in two: a method prepares the work and returns a Job, the Job runs away from
// the loop on snapshots only, and Apply installs its Result back on the loop.
package chatapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"jan-chat/internal/domain/history"
	"jan-chat/internal/domain/message"
	"jan-chat/internal/domain/navigator"
	"jan-chat/internal/domain/session"
	"jan-chat/internal/domain/usersettings"
	"jan-chat/internal/infrastructure/chatapi"
)

// API is the chat server as seen by the client.
type API interface {
	history.Remote
	history.TitleSource
	SendChat(ctx context.Context, req chatapi.ChatRequest) (string, error)
	Upload(ctx context.Context, userKey, filename string, data []byte) (chatapi.UploadedFile, error)
	Contact(ctx context.Context, req chatapi.ContactRequest) error
}

var _ API = (*chatapi.Client)(nil)

// Job is network work taken off the UI loop. It must not touch App state.
type Job func(ctx context.Context) Result

// Result is the outcome of a Job, applied with App.Apply.
type Result interface {
	apply(a *App)
}

type App struct {
	userKey  string
	api      API
	session  *session.Store
	history  *history.Manager
	settings *usersettings.Manager
	theme    *usersettings.ThemeContext
	nav      *navigator.Navigator
	alerts   *Alerts
	log      zerolog.Logger

	prefs       usersettings.Preferences
	attachments []message.FileRef
	awaiting    bool
}

func New(userKey string, api API, store usersettings.Store, theme *usersettings.ThemeContext, log zerolog.Logger) *App {
	alerts := &Alerts{}
	return &App{
		userKey:  userKey,
		api:      api,
		session:  session.NewStore(userKey),
		history:  history.NewManager(api, api, alerts, log),
		settings: usersettings.NewManager(store, log),
		theme:    theme,
		nav:      navigator.New(),
		alerts:   alerts,
		log:      log.With().Str("component", "chat-app").Str("user_key", userKey).Logger(),
		prefs:    usersettings.DefaultPreferences(),
	}
}

// Mount enters the chat view: the session gets its preamble, preferences are
// loaded and the history listing is fetched.
func (a *App) Mount(ctx context.Context) Job {
	a.session.Mount()
	a.prefs = a.settings.Load(ctx, a.userKey)
	return a.RefreshHistory()
}

func (a *App) Unmount() {
	a.session.Unmount()
}

// Apply installs the outcome of a finished Job.
func (a *App) Apply(r Result) {
	if r != nil {
		r.apply(a)
	}
}

func (a *App) UserKey() string {
	return a.userKey
}

func (a *App) Session() *session.Store {
	return a.session
}

func (a *App) Navigator() *navigator.Navigator {
	return a.nav
}

func (a *App) Theme() *usersettings.ThemeContext {
	return a.theme
}

func (a *App) Preferences() usersettings.Preferences {
	return a.prefs
}

func (a *App) Alerts() *Alerts {
	return a.alerts
}

// History is the last fetched listing of server-held conversations.
func (a *App) History() []message.Conversation {
	return a.history.Listing()
}

// Awaiting reports whether a chat reply is outstanding.
func (a *App) Awaiting() bool {
	return a.awaiting
}

// PendingAttachments are the uploaded files that ride on the next message.
func (a *App) PendingAttachments() []message.FileRef {
	out := make([]message.FileRef, len(a.attachments))
	copy(out, a.attachments)
	return out
}

// Send appends the user turn to the session and returns the Job that asks the
// server for the reply. It returns nil when there is nothing to send.
func (a *App) Send(ctx context.Context, text string) Job {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if a.awaiting {
		a.alerts.Alert(history.LevelError, "Still waiting for the previous reply.")
		return nil
	}

	prior := a.session.Messages()
	userMsg := message.Message{Role: message.RoleUser, Content: text, Attachments: a.PendingAttachments()}
	if err := a.session.Append(ctx, userMsg); err != nil {
		a.alerts.Alert(history.LevelError, err.Error())
		return nil
	}
	a.attachments = nil
	a.awaiting = true

	req := chatapi.ChatRequest{
		UserMessage:    text,
		Messages:       prior,
		AIMood:         a.prefs.AIMood,
		AIInstructions: a.prefs.AIInstructions,
	}
	api := a.api
	return func(ctx context.Context) Result {
		reply, err := api.SendChat(ctx, req)
		return sendResult{reply: reply, err: err}
	}
}

type sendResult struct {
	reply string
	err   error
}

func (r sendResult) apply(a *App) {
	a.awaiting = false
	if r.err != nil {
		a.log.Error().Err(r.err).Msg("chat request failed")
		a.alerts.Alert(history.LevelError, "Failed to get a reply. Please try again.")
		return
	}
	reply := message.Parse(message.RoleAssistant, r.reply)
	if strings.TrimSpace(reply.Content) == "" {
		a.alerts.Alert(history.LevelError, "The assistant returned an empty reply.")
		return
	}
	if err := a.session.Append(context.Background(), reply); err != nil {
		a.log.Warn().Err(err).Msg("assistant reply dropped")
	}
}

// NewChat starts a fresh conversation. A conversation with user content is
// archived in the background before it is superseded.
func (a *App) NewChat() Job {
	var job Job
	if a.session.HasUserContent() {
		conv := a.session.Conversation()
		job = a.historyJob(func(ctx context.Context, m *history.Manager) {
			_, _ = m.Archive(ctx, conv)
		})
	}
	a.session.Start()
	a.attachments = nil
	a.nav.SwitchTo(int(navigator.PanelChat))
	return job
}

// OpenChat loads a listed conversation into the session.
func (a *App) OpenChat(id string) bool {
	conv, ok := a.history.Find(id)
	if !ok {
		return false
	}
	a.session.Replace(conv)
	a.session.EnsureSystemPreamble()
	a.nav.SwitchTo(int(navigator.PanelChat))
	return true
}

func (a *App) RefreshHistory() Job {
	userKey := a.userKey
	return a.historyJob(func(ctx context.Context, m *history.Manager) {
		m.List(ctx, userKey)
	})
}

func (a *App) DeleteChat(id string) Job {
	userKey := a.userKey
	return a.historyJob(func(ctx context.Context, m *history.Manager) {
		_ = m.Delete(ctx, userKey, id)
	})
}

func (a *App) ArchiveAll() Job {
	userKey := a.userKey
	return a.historyJob(func(ctx context.Context, m *history.Manager) {
		if m.ArchiveAll(ctx, userKey) == nil {
			m.List(ctx, userKey)
		}
	})
}

func (a *App) DeleteAll() Job {
	userKey := a.userKey
	return a.historyJob(func(ctx context.Context, m *history.Manager) {
		_ = m.DeleteAll(ctx, userKey)
	})
}

func (a *App) historyJob(run func(ctx context.Context, m *history.Manager)) Job {
	alerts := &Alerts{}
	snapshot := a.history.Snapshot(alerts)
	return func(ctx context.Context) Result {
		run(ctx, snapshot)
		return historyResult{snapshot: snapshot, alerts: alerts}
	}
}

type historyResult struct {
	snapshot *history.Manager
	alerts   *Alerts
}

func (r historyResult) apply(a *App) {
	a.history.Adopt(r.snapshot)
	a.alerts.Merge(r.alerts)
}

// SetMood stores a new persona mood for the user.
func (a *App) SetMood(ctx context.Context, mood string) error {
	return a.savePrefs(ctx, strings.TrimSpace(mood), a.prefs.AIInstructions)
}

// SetInstructions stores new persona instructions for the user.
func (a *App) SetInstructions(ctx context.Context, instructions string) error {
	return a.savePrefs(ctx, a.prefs.AIMood, strings.TrimSpace(instructions))
}

func (a *App) savePrefs(ctx context.Context, mood, instructions string) error {
	if err := a.settings.Save(ctx, a.userKey, mood, instructions); err != nil {
		a.log.Error().Err(err).Msg("save preferences failed")
		a.alerts.Alert(history.LevelError, "Failed to save settings.")
		return err
	}
	a.prefs = usersettings.Preferences{AIMood: mood, AIInstructions: instructions}
	a.alerts.Alert(history.LevelInfo, "Settings saved.")
	return nil
}

// SetTheme switches the theme, or toggles it when value is empty.
func (a *App) SetTheme(ctx context.Context, value string) error {
	if strings.TrimSpace(value) == "" {
		a.theme.Toggle()
		return nil
	}
	if err := a.theme.SetTheme(ctx, value); err != nil {
		a.alerts.Alert(history.LevelError, "Theme must be dark, light or system.")
		return err
	}
	return nil
}

// Upload sends a file to the server; the stored file is attached to the next
// message once the Job's result is applied.
func (a *App) Upload(filename string, data []byte) Job {
	api, userKey := a.api, a.userKey
	return func(ctx context.Context) Result {
		file, err := api.Upload(ctx, userKey, filename, data)
		return uploadResult{filename: filename, file: file, err: err}
	}
}

// UploadFailed reports a file that could not be read locally.
func (a *App) UploadFailed(filename string, err error) {
	a.log.Warn().Err(err).Str("filename", filename).Msg("read upload failed")
	a.alerts.Alert(history.LevelError, fmt.Sprintf("Could not read %s.", filename))
}

type uploadResult struct {
	filename string
	file     chatapi.UploadedFile
	err      error
}

func (r uploadResult) apply(a *App) {
	if r.err != nil {
		a.log.Error().Err(r.err).Str("filename", r.filename).Msg("upload failed")
		a.alerts.Alert(history.LevelError, fmt.Sprintf("Upload of %s failed.", r.filename))
		return
	}
	name := r.file.Name
	if name == "" {
		name = r.filename
	}
	a.attachments = append(a.attachments, message.NewFileRef(name, r.file.URL))
	a.alerts.Alert(history.LevelInfo, fmt.Sprintf("Attached %s.", name))
}

// Contact submits the contact form on behalf of the user.
func (a *App) Contact(name, email, text string) Job {
	api := a.api
	req := chatapi.ContactRequest{Name: name, Email: email, Message: text}
	return func(ctx context.Context) Result {
		return contactResult{err: api.Contact(ctx, req)}
	}
}

type contactResult struct {
	err error
}

func (r contactResult) apply(a *App) {
	if r.err != nil {
		a.log.Error().Err(r.err).Msg("contact submission failed")
		a.alerts.Alert(history.LevelError, "Failed to send your message.")
		return
	}
	a.alerts.Alert(history.LevelInfo, "Message sent. We will get back to you soon.")
}
