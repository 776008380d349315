//go:build windows

package selection

import (
	"path/filepath"
	"strings"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/ytget/quickplay/internal/config"
	"github.com/ytget/quickplay/internal/logging"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
)

// windowsProbe asks the Explorer shell for its selected items directly.
type windowsProbe struct {
	log *logrus.Entry
}

// New returns the selection probe for this platform.
func New(_ *config.Settings) Probe {
	return &windowsProbe{log: logging.Module("selection")}
}

func (p *windowsProbe) FileManagerActive() bool {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return false
	}

	var pid uint32
	procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&pid))) //nolint:errcheck
	if pid == 0 {
		return false
	}

	name, err := processImageName(pid)
	if err != nil {
		return false
	}
	return strings.EqualFold(filepath.Base(name), "explorer.exe")
}

func (p *windowsProbe) SelectedFiles() []string {
	// COM apartment per call; the probe is invoked from worker goroutines.
	if err := ole.CoInitialize(0); err != nil {
		// S_FALSE (already initialized) also arrives as an error; proceed.
		p.log.WithError(err).Debug("CoInitialize")
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		p.log.WithError(err).Debug("shell automation unavailable")
		return nil
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil
	}
	defer shell.Release()

	windowsVar, err := oleutil.CallMethod(shell, "Windows")
	if err != nil {
		return nil
	}
	shellWindows := windowsVar.ToIDispatch()
	defer shellWindows.Release()

	countVar, err := oleutil.GetProperty(shellWindows, "Count")
	if err != nil {
		return nil
	}

	var paths []string
	for i := 0; i < int(countVar.Val); i++ {
		paths = append(paths, windowSelection(shellWindows, i)...)
	}
	return paths
}

func (p *windowsProbe) FirstVideo() (string, bool) {
	return firstVideo(p)
}

// windowSelection extracts the selected item paths from one Explorer window.
func windowSelection(shellWindows *ole.IDispatch, index int) []string {
	winVar, err := oleutil.CallMethod(shellWindows, "Item", index)
	if err != nil {
		return nil
	}
	win := winVar.ToIDispatch()
	if win == nil {
		return nil
	}
	defer win.Release()

	docVar, err := oleutil.GetProperty(win, "Document")
	if err != nil {
		return nil
	}
	doc := docVar.ToIDispatch()
	if doc == nil {
		return nil
	}
	defer doc.Release()

	itemsVar, err := oleutil.CallMethod(doc, "SelectedItems")
	if err != nil {
		return nil
	}
	items := itemsVar.ToIDispatch()
	if items == nil {
		return nil
	}
	defer items.Release()

	countVar, err := oleutil.GetProperty(items, "Count")
	if err != nil {
		return nil
	}

	var paths []string
	for i := 0; i < int(countVar.Val); i++ {
		itemVar, err := oleutil.CallMethod(items, "Item", i)
		if err != nil {
			continue
		}
		item := itemVar.ToIDispatch()
		if item == nil {
			continue
		}
		pathVar, err := oleutil.GetProperty(item, "Path")
		if err == nil {
			if path := pathVar.ToString(); path != "" {
				paths = append(paths, path)
			}
		}
		item.Release()
	}
	return paths
}

func processImageName(pid uint32) (string, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", err
	}
	defer windows.CloseHandle(h)

	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:size]), nil
}
