// SPDX-License-Identifier: MIT

package tools

// ToolPrefix namespaces every mathengine tool name
const ToolPrefix = "mathengine."

// Registered tool names
const (
	ToolEvaluate      = ToolPrefix + "evaluate"
	ToolIntegrate     = ToolPrefix + "integrate"
	ToolDifferentiate = ToolPrefix + "differentiate"
	ToolTangent       = ToolPrefix + "tangent"
	ToolFindExtrema   = ToolPrefix + "find_extrema"
)
