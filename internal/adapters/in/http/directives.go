package http

import "fmt"

// UI directives mirror the action payloads the warehouse front end
// understands: open a record window, show a toast, or download a file.

// OpenWindowDirective tells the client to open a record form.
type OpenWindowDirective struct {
	Type     string `json:"type"`
	Model    string `json:"model"`
	ID       string `json:"id"`
	ViewMode string `json:"view_mode"`
	Target   string `json:"target"`
}

func openOrderWindow(orderID string, target string) OpenWindowDirective {
	return OpenWindowDirective{
		Type:     "open_window",
		Model:    "packaging.order",
		ID:       orderID,
		ViewMode: "form",
		Target:   target,
	}
}

// NotificationDirective tells the client to show a toast message.
type NotificationDirective struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Level   string `json:"level"`
	Next    string `json:"next,omitempty"`
}

func successNotification(title, message string) NotificationDirective {
	return NotificationDirective{
		Type:    "notification",
		Title:   title,
		Message: message,
		Level:   "success",
		Next:    "close_dialog",
	}
}

func warningNotification(title, message string) NotificationDirective {
	return NotificationDirective{
		Type:    "notification",
		Title:   title,
		Message: message,
		Level:   "warning",
		Next:    "close_dialog",
	}
}

// DownloadDirective tells the client to fetch a generated document.
type DownloadDirective struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func downloadLabel(labelID, filename string) DownloadDirective {
	return DownloadDirective{
		Type:     "download",
		URL:      fmt.Sprintf("/api/v1/labels/%s/document", labelID),
		Filename: filename,
	}
}
