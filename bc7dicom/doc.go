// Package bc7dicom is intentionally thin: see frames.go and
// register.go for the two things it adds on top of package bc7.
package bc7dicom
