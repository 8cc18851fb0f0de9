package config

import "fmt"

func Validate(c *Config) error {
	switch c.Output.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid config: unknown output format %q", c.Output.Format)
	}
	seen := make(map[string]struct{})
	for _, group := range []struct {
		kind    string
		sources []Source
	}{
		{"existing", c.Existing},
		{"incoming", c.Incoming},
	} {
		for i, src := range group.sources {
			if err := validateSource(src); err != nil {
				return fmt.Errorf("invalid config: %s[%d]: %w", group.kind, i, err)
			}
			if src.Name == "" {
				continue
			}
			if _, ok := seen[src.Name]; ok {
				return fmt.Errorf("duplicated source name is not allowed: %s", src.Name)
			}
			seen[src.Name] = struct{}{}
		}
	}
	return nil
}

func validateSource(src Source) error {
	if _, err := ParseOption(src.Options); err != nil {
		return err
	}
	switch src.Type {
	case SourceText:
		if len(src.Names) == 0 {
			return fmt.Errorf("text source must list names")
		}
	case SourceFile:
		if src.Path == "" {
			return fmt.Errorf("file source must have a non-empty path")
		}
	case SourceSQL:
		return validateSQL(src)
	default:
		return fmt.Errorf("unknown source type %q", src.Type)
	}
	return nil
}

func validateSQL(src Source) error {
	if src.URI == "" {
		return fmt.Errorf("database must have a non-empty URI")
	}
	switch src.Engine {
	case EngineSQLite, EngineMySQL:
		if src.Driver != "" {
			return fmt.Errorf("driver is only supported for the %s engine", EnginePostgreSQL)
		}
	case EnginePostgreSQL:
		switch src.Driver {
		case "", DriverPGXV5, DriverLibPQ:
		default:
			return fmt.Errorf("unknown postgresql driver %q (use %q or %q)", src.Driver, DriverPGXV5, DriverLibPQ)
		}
	default:
		return fmt.Errorf("unknown engine %q", src.Engine)
	}
	if src.Query != "" && src.Table != "" {
		return fmt.Errorf("query and table settings are mutually exclusive")
	}
	if src.Query == "" && src.Table == "" {
		return fmt.Errorf("sql source needs either a table or a query")
	}
	return nil
}
