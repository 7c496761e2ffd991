package propcat

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v2"
)

// ApplyOptions copies the recognized option names (reloadable,
// message.encoding, message.suffix, message.basename, message.format) into
// cfg. Other names are ignored so a shared engine configuration can be passed
// as is. An invalid value fails with a *ConfigError.
func ApplyOptions(cfg *Config, options map[string]string) error {
	for name, value := range options {
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(name) {
		case optionReloadable:
			reloadable, err := strconv.ParseBool(value)
			if err != nil {
				return newConfigError(optionReloadable, value, err)
			}
			cfg.Reloadable = reloadable
		case optionMessageEncoding:
			cfg.MessageEncoding = value
		case optionMessageSuffix:
			cfg.MessageSuffix = value
		case optionMessageBasename:
			cfg.MessageBasename = value
		case optionMessageFormat:
			format, err := ParseMessageFormat(value)
			if err != nil {
				return err
			}
			cfg.MessageFormat = format
		}
	}
	return nil
}

// LoadConfig reads options from a .properties or .yaml/.yml file. YAML may
// nest the message options (message: {basename: messages}) or use the dotted
// names directly. Collaborators (Provider, Resolver, Logger) are left unset.
func LoadConfig(path string) (Config, error) {
	var options map[string]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties":
		options, err = readPropertiesOptions(path)
	case ".yaml", ".yml":
		options, err = readYAMLOptions(path)
	default:
		err = fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := ApplyOptions(&cfg, options); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readPropertiesOptions(path string) (map[string]string, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return props.Map(), nil
}

func readYAMLOptions(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	options := map[string]string{}
	flattenOptions(options, "", raw)
	return options, nil
}

func flattenOptions(target map[string]string, prefix string, value interface{}) {
	join := func(key interface{}) string {
		name := fmt.Sprintf("%v", key)
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	switch typed := value.(type) {
	case map[string]interface{}:
		for k, v := range typed {
			flattenOptions(target, join(k), v)
		}
	case map[interface{}]interface{}:
		for k, v := range typed {
			flattenOptions(target, join(k), v)
		}
	case nil:
		target[prefix] = ""
	default:
		target[prefix] = fmt.Sprintf("%v", typed)
	}
}
