// Package export writes booking lists to CSV or Excel workbooks.
package export
