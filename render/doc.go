// Package render draws fitted polynomials over their source points with
// gonum/plot.
//
// 🚀 What does it do?
//
//	New builds a *plot.Plot holding:
//	  - a background grid and axis labels,
//	  - one line per Curve, sampled evenly over [Config.XMin, Config.XMax],
//	  - the raw points as a scatter overlay,
//	  - a legend naming every curve.
//	Save writes the plot to a file whose extension picks the format;
//	Write streams it to any io.Writer.
//
// ✨ Defaults:
//
//	DefaultConfig reproduces the classic two-curve chart: x in [0, 5],
//	1000 samples per curve, "x-axis"/"y-axis" labels, a solid green first
//	curve, a dashed red second curve and blue points.
//
// ⚠️ Curves whose samples overflow to ±Inf cannot be drawn; New reports
// ErrUnplottable rather than producing an empty image.
package render
