package preflight

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"onboard/internal/config"
)

// minFreeBytes is the floor below which the free-space check fails. A run
// writes a handful of small JSON files, so this is generous headroom.
const minFreeBytes = 64 << 20

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has room for run output.
func CheckFreeSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minFreeBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%d MiB free, below %d MiB floor)", path, free>>20, minFreeBytes>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckWebhookURL verifies the Slack webhook is a well-formed http(s) URL.
func CheckWebhookURL(webhook string) Result {
	const name = "Slack webhook"

	webhook = strings.TrimSpace(webhook)
	if webhook == "" {
		return Result{Name: name, Detail: "not configured; announcements will be skipped"}
	}
	parsed, err := url.ParseRequestURI(webhook)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("invalid URL (%v)", err)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Result{Name: name, Detail: fmt.Sprintf("unsupported scheme %q", parsed.Scheme)}
	}
	return Result{Name: name, Passed: true, Detail: parsed.Host}
}

// CheckMailSettings verifies the SMTP submission settings are present.
func CheckMailSettings(mail config.Mail) Result {
	const name = "Mail settings"

	if strings.TrimSpace(mail.Account) == "" || strings.TrimSpace(mail.AppPassword) == "" {
		return Result{Name: name, Detail: "account or app password missing"}
	}
	if strings.TrimSpace(mail.Host) == "" || mail.Port <= 0 {
		return Result{Name: name, Detail: "submission host or port missing"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s via %s:%d", mail.Account, mail.Host, mail.Port)}
}
