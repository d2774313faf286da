// Package ocr finds color literals printed in images.
//
// Style guides, design mockups and screenshots of stylesheets often contain
// colors as text ("#3366CC", "rgb(51, 102, 204)", "hsl(220, 60%, 50%)").
// This package runs Tesseract OCR line by line through the gosseract
// bindings, scans each recognized line for color-like tokens, and keeps only
// those that colorops.Parse accepts.
//
// # Requirements
//
// Tesseract and its language data must be installed on the host. A custom
// tessdata directory can be set with Reader.TessdataPrefix.
//
// # Accuracy
//
// Small text is upscaled before recognition (Reader.Scale, default 2.0).
// OCR commonly confuses "0" with "O" inside hex literals; ScanLine folds
// letter O to zero within hex tokens.
package ocr
