package message

import (
	"regexp"
	"strings"
)

// DownloadMarker is the literal token the assistant emits when it produced a downloadable report.
const DownloadMarker = "download://report.docx"

// NoReferences is the literal the assistant emits when it has nothing to cite.
const NoReferences = "References: None"

var (
	referencesHeader = regexp.MustCompile(`(?im)^[ \t>#*_]*references[ \t*_]*:[ \t*_]*`)
	bulletPrefix     = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)
	blankRuns        = regexp.MustCompile(`\n{3,}`)
)

// FragmentKind tells the view how to draw a fragment.
type FragmentKind string

const (
	FragmentText       FragmentKind = "text"
	FragmentReference  FragmentKind = "reference"
	FragmentAttachment FragmentKind = "attachment"
	FragmentDownload   FragmentKind = "download"
)

// Fragment is one display unit of a rendered message.
type Fragment struct {
	Kind    FragmentKind
	Text    string
	URL     string
	FileExt FileExt
	Index   int
}

// Parse turns raw model output into a Message, lifting the download pointer and
// the references block out of the text. Only assistant text carries markers.
func Parse(role Role, raw string) Message {
	if role != RoleAssistant {
		return Message{Role: role, Content: raw}
	}

	body, refs := splitReferences(raw)
	msg := Message{Role: role, References: refs}

	if strings.Contains(body, DownloadMarker) {
		body = strings.ReplaceAll(body, DownloadMarker, "")
		msg.DownloadURL = DownloadMarker
	}
	msg.Content = tidy(body)
	if msg.DownloadURL != "" {
		msg.ReportContent = msg.Content
	}
	return msg
}

// StripMarkers removes the download token and the references block from text.
func StripMarkers(text string) string {
	body, _ := splitReferences(text)
	return tidy(strings.ReplaceAll(body, DownloadMarker, ""))
}

// Render produces the ordered display fragments for a message: text first, then
// references, attachments and the download pointer.
func Render(m Message) []Fragment {
	var fragments []Fragment

	text := m.Content
	refs := m.References
	if m.Role == RoleAssistant {
		var inline []string
		text, inline = splitReferences(text)
		if len(refs) == 0 {
			refs = inline
		}
		text = tidy(strings.ReplaceAll(text, DownloadMarker, ""))
	}
	if strings.TrimSpace(text) != "" {
		fragments = append(fragments, Fragment{Kind: FragmentText, Text: text})
	}

	for i, ref := range refs {
		fragments = append(fragments, Fragment{Kind: FragmentReference, Text: ref, Index: i + 1})
	}

	for i, att := range m.Attachments {
		ext := att.FileExt
		if ext == "" {
			ext = DetectFileExt(att.Filename)
		}
		fragments = append(fragments, Fragment{
			Kind:    FragmentAttachment,
			Text:    att.Filename,
			URL:     att.BlobURL,
			FileExt: ext,
			Index:   i + 1,
		})
	}

	if m.DownloadURL != "" {
		fragments = append(fragments, Fragment{
			Kind: FragmentDownload,
			Text: reportFilename(m.DownloadURL),
			URL:  m.DownloadURL,
		})
	}
	return fragments
}

// splitReferences separates the trailing references block. "References: None"
// yields no references.
func splitReferences(text string) (string, []string) {
	locs := referencesHeader.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}
	last := locs[len(locs)-1]
	body := text[:last[0]]
	block := strings.TrimSpace(text[last[1]:])

	if strings.EqualFold(strings.Trim(block, " .*_"), "none") {
		return body, nil
	}

	var refs []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if line == "" || strings.EqualFold(line, "none") {
			continue
		}
		refs = append(refs, line)
	}
	return body, refs
}

func tidy(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func reportFilename(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 && i < len(url)-1 {
		return url[i+1:]
	}
	return url
}
