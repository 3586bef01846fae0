package core

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type (
	// Notification is a transient, user-visible message (a toast).
	Notification struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Variant     Variant `json:"variant"`
	}

	// Notifier is anything that can show notifications to the user.
	Notifier interface {
		Notify(n Notification)
	}
)

func Success(title, desc string) Notification {
	return Notification{Title: title, Description: desc, Variant: VariantDefault}
}

func Failure(title, desc string) Notification {
	return Notification{Title: title, Description: desc, Variant: VariantDestructive}
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
