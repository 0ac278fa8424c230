package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	iconDialogError = "dialog-error"

	urgencyCritical = "critical"
)

// NotifyError sends a desktop notification to the user of the current
// display session, if one can be found. The daemon usually runs as root,
// so the notification has to be issued as the session user.
func NotifyError(title, text string) {
	notifySend(urgencyCritical, title, text, iconDialogError)
}

func notifySend(urgency, title, text, icon string) {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		Debug("Cannot send notification, missing env variable 'DISPLAY'!")
		return
	}

	user, err := displaySessionUser(display)
	if err != nil {
		Warning("Cannot send notification: %v", err)
		return
	}

	output, err := exec.Command("id", "-u", user).Output()
	if err != nil {
		Warning("Cannot send notification, unable to detect user id of %s: %v", user, err)
		return
	}
	userId := strings.TrimSpace(string(output))

	cmd := exec.Command("sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+userId+"/bus",
		"notify-send",
		"-a", "thelio2go",
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	if err := cmd.Run(); err != nil {
		Error("Error sending notification: %v", err)
	}
}

func displaySessionUser(display string) (string, error) {
	output, err := exec.Command("who").Output()
	if err != nil {
		return "", fmt.Errorf("unable to list display sessions: %w", err)
	}
	for _, line := range strings.Split(string(output), "\n") {
		if strings.Contains(line, display) {
			return strings.TrimSpace(strings.Fields(line)[0]), nil
		}
	}
	return "", fmt.Errorf("no user found for display %s", display)
}
