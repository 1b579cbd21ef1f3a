package widgets

import (
	"errors"

	"fyne.io/fyne/v2"
	sdialog "github.com/sqweek/dialog"
)

func SaveFile(cb func(filename string), desc string, ext string) {
	go func() {
		filename, err := sdialog.File().Filter(desc, ext).Title("Save " + desc).Save()
		if err != nil {
			if errors.Is(err, sdialog.ErrCancelled) {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		fyne.Do(func() {
			cb(filename)
		})
	}()
}
