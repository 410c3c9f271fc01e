package config

// Settings is the merged content of one or more settings files.
type Settings struct {
	RunDir       *string
	ConfigDir    *string
	Command      *string
	Args         []string // nil when not set; an explicit empty list clears the defaults
	RunMode      *string
	PrintConfigs *bool
	LogLevel     *string
	LogFormat    *string

	// Sources lists the files the settings were read from, in load order.
	Sources []string
}

// Merge overlays every field set in other onto s.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	mergeString(&s.RunDir, other.RunDir)
	mergeString(&s.ConfigDir, other.ConfigDir)
	mergeString(&s.Command, other.Command)
	mergeString(&s.RunMode, other.RunMode)
	mergeString(&s.LogLevel, other.LogLevel)
	mergeString(&s.LogFormat, other.LogFormat)
	if other.Args != nil {
		s.Args = append([]string{}, other.Args...)
	}
	if other.PrintConfigs != nil {
		v := *other.PrintConfigs
		s.PrintConfigs = &v
	}
	s.Sources = append(s.Sources, other.Sources...)
}

func mergeString(dst **string, src *string) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}
