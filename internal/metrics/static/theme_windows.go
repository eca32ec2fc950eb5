//go:build windows

package static

import (
	"context"

	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// RegistryTheme reads AppsUseLightTheme from the current user's registry hive
func RegistryTheme(_ context.Context) (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	light, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return "", err
	}
	if light == 0 {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}
