package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Non-zero values from source are applied; zero values and false booleans
// only override when the key is listed in source.SetFields.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}
	set := func(key string, nonZero bool) bool {
		if nonZero || source.SetFields[key] {
			target.Sources[key] = sourceType
			return true
		}
		return false
	}

	if set("count", source.Count != 0) {
		target.Count = source.Count
	}
	if set("seed", source.Seed != nil) {
		target.Seed = source.Seed
	}
	if set("workers", source.Workers != 0) {
		target.Workers = source.Workers
	}
	if set("langPolicy", source.LangPolicy != "") {
		target.LangPolicy = source.LangPolicy
	}
	if set("maxCount", source.MaxCount != 0) {
		target.MaxCount = source.MaxCount
	}
	if set("maxDepth", source.MaxDepth != 0) {
		target.MaxDepth = source.MaxDepth
	}
	if set("output", source.Output != "") {
		target.Output = source.Output
	}
	if set("compact", source.Compact) {
		target.Compact = source.Compact
	}
	if set("logLevel", source.LogLevel != "") {
		target.LogLevel = source.LogLevel
	}
	if set("logFormat", source.LogFormat != "") {
		target.LogFormat = source.LogFormat
	}
	if set("logFile", source.LogFile != "") {
		target.LogFile = source.LogFile
	}
}
