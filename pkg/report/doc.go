// Package report builds project monthly report (PMR) bodies: markdown
// assembled from budget position, changes, and anomalies, rendered to
// HTML with goldmark.
package report
