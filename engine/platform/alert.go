package platform

import "github.com/sqweek/dialog"

// NativeAlerter shows shutdown messages in an OS message box. It satisfies
// shutdown.Alerter.
type NativeAlerter struct{}

func (NativeAlerter) Alert(title, text string) error {
	dialog.Message("%s", text).Title(title).Error()
	return nil
}
