//go:build windows

package hostenv

import (
	"fmt"
	"sort"

	"golang.org/x/sys/windows/registry"
)

func openKey(key RegistryKey) (registry.Key, error) {
	access := uint32(registry.READ)
	if key.View32 {
		access |= registry.WOW64_32KEY
	}
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, key.Path, access)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrRegistryUnavailable, key.Path, err)
	}
	return k, nil
}

func registrySubKeys(key RegistryKey) ([]string, error) {
	k, err := openKey(key)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRegistryUnavailable, key.Path, err)
	}
	sort.Strings(names)
	return names, nil
}

func registryString(key RegistryKey, name string) (string, error) {
	k, err := openKey(key)
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s\\%s: %v", ErrRegistryUnavailable, key.Path, name, err)
	}
	return v, nil
}

func registryInt(key RegistryKey, name string) (uint64, error) {
	k, err := openKey(key)
	if err != nil {
		return 0, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s\\%s: %v", ErrRegistryUnavailable, key.Path, name, err)
	}
	return v, nil
}
