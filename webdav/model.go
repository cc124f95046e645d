package webdav

import "encoding/xml"

const (
	NamespaceDAV   = "DAV:"
	NamespaceSabre = "http://sabredav.org/ns"
)

// Multistatus 是 PROPFIND 返回的根结构
type Multistatus struct {
	XMLName   xml.Name    `xml:"DAV: multistatus"`
	Responses []*Response `xml:"DAV: response"`
}

// Response 代表每个文件或目录的信息
type Response struct {
	Href      string      `xml:"DAV: href"`
	Propstats []*Propstat `xml:"DAV: propstat"`
}

// Propstat 包含资源的属性和状态, 同一个资源可能返回多个(200/404)
type Propstat struct {
	Prop   Prop   `xml:"DAV: prop"`
	Status string `xml:"DAV: status"`
}

type Prop struct {
	DisplayName   string        `xml:"DAV: displayname"`
	LastModified  string        `xml:"DAV: getlastmodified"`
	ContentLength string        `xml:"DAV: getcontentlength"`
	ContentType   string        `xml:"DAV: getcontenttype"`
	ETag          string        `xml:"DAV: getetag"`
	ResourceType  *ResourceType `xml:"DAV: resourcetype"`
}

// ResourceType 用于区分文件和目录
type ResourceType struct {
	Collection *struct{} `xml:"DAV: collection"`
}

// ErrorDocument is the error body returned by sabre based servers.
type ErrorDocument struct {
	XMLName   xml.Name `xml:"DAV: error"`
	Exception string   `xml:"http://sabredav.org/ns exception"`
	Message   string   `xml:"http://sabredav.org/ns message"`
}
