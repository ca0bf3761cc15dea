//go:build windows

package winreg

import (
	"golang.org/x/sys/windows/registry"

	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/resolver"
)

func readString(root resolver.Root, subKey, valueName string) (string, error) {
	var hive registry.Key
	switch root {
	case resolver.RootMachine:
		hive = registry.LOCAL_MACHINE
	case resolver.RootUser:
		hive = registry.CURRENT_USER
	default:
		return "", errors.Newf("unknown registry root %q", root)
	}

	key, err := registry.OpenKey(hive, subKey, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s\\%s", root, subKey)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(valueName)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", valueName)
	}
	return value, nil
}
