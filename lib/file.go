package lib

type File struct {
	Hash     ByteString `json:"hash"`
	Size     uint32     `json:"size"`
	Type     string     `json:"type"`
	Content  []byte     `json:"-"`
	Encoding string     `json:"encoding,omitempty"`
	Name     string     `json:"name,omitempty"`
}
