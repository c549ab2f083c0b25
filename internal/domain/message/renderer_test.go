package message

import (
	"context"
	"reflect"
	"testing"
)

func TestParse_ExtractsReferencesAndDownload(t *testing.T) {
	raw := "Here is your quarterly summary.\n\n" + DownloadMarker + "\n\nReferences:\n- https://example.com/q3\n2. Annual report 2024\n"

	got := Parse(RoleAssistant, raw)

	if got.Content != "Here is your quarterly summary." {
		t.Errorf("Content = %q", got.Content)
	}
	if got.DownloadURL != DownloadMarker {
		t.Errorf("DownloadURL = %q, want %q", got.DownloadURL, DownloadMarker)
	}
	if got.ReportContent != got.Content {
		t.Errorf("ReportContent = %q, want the cleaned content", got.ReportContent)
	}
	want := []string{"https://example.com/q3", "Annual report 2024"}
	if !reflect.DeepEqual(got.References, want) {
		t.Errorf("References = %v, want %v", got.References, want)
	}
}

func TestParse_ReferencesNone(t *testing.T) {
	got := Parse(RoleAssistant, "Paris is the capital of France.\n\n"+NoReferences)

	if got.Content != "Paris is the capital of France." {
		t.Errorf("Content = %q", got.Content)
	}
	if len(got.References) != 0 {
		t.Errorf("expected no references, got %v", got.References)
	}
	if got.DownloadURL != "" || got.ReportContent != "" {
		t.Errorf("expected no download, got %q / %q", got.DownloadURL, got.ReportContent)
	}
}

func TestParse_UserTextIsUntouched(t *testing.T) {
	raw := "please write References: None somewhere"
	got := Parse(RoleUser, raw)
	if got.Content != raw {
		t.Errorf("user content changed: %q", got.Content)
	}
}

func TestRender_Fragments(t *testing.T) {
	msg := Message{
		Role:        RoleAssistant,
		Content:     "Done. " + DownloadMarker + "\n**References:**\n* Source A",
		Attachments: []FileRef{NewFileRef("chart.PNG", "https://blob/chart.png"), {Filename: "notes.txt", BlobURL: "https://blob/notes.txt"}},
		DownloadURL: DownloadMarker,
	}

	got := Render(msg)

	wantKinds := []FragmentKind{FragmentText, FragmentReference, FragmentAttachment, FragmentAttachment, FragmentDownload}
	if len(got) != len(wantKinds) {
		t.Fatalf("got %d fragments, want %d: %+v", len(got), len(wantKinds), got)
	}
	for i, kind := range wantKinds {
		if got[i].Kind != kind {
			t.Errorf("fragment %d kind = %s, want %s", i, got[i].Kind, kind)
		}
	}
	if got[0].Text != "Done." {
		t.Errorf("text fragment = %q, want markers stripped", got[0].Text)
	}
	if got[1].Text != "Source A" {
		t.Errorf("reference fragment = %q", got[1].Text)
	}
	if got[2].FileExt != FileExtImage || got[3].FileExt != FileExtUnknown {
		t.Errorf("attachment kinds = %s, %s", got[2].FileExt, got[3].FileExt)
	}
	if got[4].Text != "report.docx" {
		t.Errorf("download fragment = %q", got[4].Text)
	}
}

func TestDetectFileExt(t *testing.T) {
	tests := []struct {
		filename string
		want     FileExt
	}{
		{"photo.jpeg", FileExtImage},
		{"diagram.svg", FileExtImage},
		{"paper.PDF", FileExtPDF},
		{"letter.doc", FileExtDocx},
		{"report.docx", FileExtDocx},
		{"archive.zip", FileExtUnknown},
		{"README", FileExtUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := DetectFileExt(tt.filename); got != tt.want {
				t.Errorf("DetectFileExt(%q) = %s, want %s", tt.filename, got, tt.want)
			}
		})
	}
}

func TestMessageValidate(t *testing.T) {
	ctx := context.Background()
	if err := (Message{Role: RoleUser, Content: "Hi"}).Validate(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Message{Content: "Hi"}).Validate(ctx); err == nil {
		t.Errorf("expected error for missing role")
	}
	if err := (Message{Role: RoleUser, Content: "  "}).Validate(ctx); err == nil {
		t.Errorf("expected error for blank content")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := []Message{{Role: RoleAssistant, Content: "x", References: []string{"a"}}}
	cp := Clone(orig)
	cp[0].References[0] = "b"
	if orig[0].References[0] != "a" {
		t.Errorf("Clone shares reference slices")
	}
}
