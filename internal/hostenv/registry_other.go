//go:build !windows

package hostenv

func registrySubKeys(RegistryKey) ([]string, error) {
	return nil, ErrRegistryUnavailable
}

func registryString(RegistryKey, string) (string, error) {
	return "", ErrRegistryUnavailable
}

func registryInt(RegistryKey, string) (uint64, error) {
	return 0, ErrRegistryUnavailable
}
