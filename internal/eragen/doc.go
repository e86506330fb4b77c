// Package eragen builds an era table from the Japanese Wikipedia list of eras.
//
// The pipeline fetches the list page, extracts one record per era row of the
// "wikitable" tables, romanizes the hiragana reading, removes block-listed
// entries, assigns unique native abbreviations and writes the table in the
// source format read by era.Load, to a local file, stdout or S3.
package eragen
