package ocs

import "encoding/xml"

const (
	HeaderAPIRequest = "OCS-APIRequest"
	SharesAPI        = "ocs/v2.php/apps/files_sharing/api/v1/shares"
)

const (
	ShareTypePublicLink = 3
	PermissionRead      = 1
)

const (
	StatusOK      = "ok"
	StatusFailure = "failure"
)

type Meta struct {
	Status     string `xml:"status"`
	StatusCode int    `xml:"statuscode"`
	Message    string `xml:"message"`
}

type ShareData struct {
	ID          string `xml:"id"`
	ShareType   int    `xml:"share_type"`
	Permissions int    `xml:"permissions"`
	Expiration  string `xml:"expiration"`
	Path        string `xml:"path"`
	Token       string `xml:"token"`
	URL         string `xml:"url"`
}

type ShareResponse struct {
	XMLName xml.Name  `xml:"ocs"`
	Meta    Meta      `xml:"meta"`
	Data    ShareData `xml:"data"`
}

// ShareResult is what a caller gets back after creating a public share.
type ShareResult struct {
	URL        string
	ID         string
	Token      string
	Path       string
	Expiration string
}
