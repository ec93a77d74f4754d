package configloader

import "github.com/yaklabco/gomdoc/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if non-nil, so false and 0 can be set
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Extensions != "" {
		result.Extensions = override.Extensions
	}
	if override.MarkdownExtensions != "" {
		result.MarkdownExtensions = override.MarkdownExtensions
	}
	if override.ImageExtensions != "" {
		result.ImageExtensions = override.ImageExtensions
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.ReportFormat != "" {
		result.ReportFormat = override.ReportFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Sort != nil {
		result.Sort = config.Bool(*override.Sort)
	}
	if override.Verbose != nil {
		result.Verbose = config.Int(*override.Verbose)
	}

	// Plain booleans can only be switched on by a higher layer.
	if override.LocalCSS {
		result.LocalCSS = true
	}
	if override.NoIndex {
		result.NoIndex = true
	}
	if override.Yes {
		result.Yes = true
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
