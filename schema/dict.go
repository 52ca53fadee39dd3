package schema

import "encoding/xml"

// dictRoot mirrors the root <fix type="FIX" major="4" minor="4">
// element described in spec §6.
type dictRoot struct {
	XMLName xml.Name `xml:"fix"`
	Type    string   `xml:"type,attr"`
	Major   string   `xml:"major,attr"`
	Minor   string   `xml:"minor,attr"`

	Header  dictComposite `xml:"header"`
	Trailer dictComposite `xml:"trailer"`

	Messages   []dictMessage      `xml:"messages>message"`
	Components []dictComponentDef `xml:"components>component"`
	Fields     []dictFieldDef     `xml:"fields>field"`
}

// dictFieldDef is a <field> definition under <fields>: number, name,
// type, and an optional enumeration.
type dictFieldDef struct {
	Number int         `xml:"number,attr"`
	Name   string      `xml:"name,attr"`
	Type   string      `xml:"type,attr"`
	Values []dictValue `xml:"value"`
}

type dictValue struct {
	Enum        string `xml:"enum,attr"`
	Description string `xml:"description,attr"`
}

// dictComponentDef is a named, reusable <component> under
// <components>.
type dictComponentDef struct {
	Name string `xml:"name,attr"`
	dictComposite
}

// dictMessage is a <message> under <messages>.
type dictMessage struct {
	Name    string `xml:"name,attr"`
	MsgType string `xml:"msgtype,attr"`
	MsgCat  string `xml:"msgcat,attr"`
	dictComposite
}

// dictComposite holds the ordered, interleaved <field>/<component>/
// <group> children of a header, trailer, message, component, or
// group body. Using xml:",any" instead of three separate typed
// slices preserves document order across element kinds and sidesteps
// the single-vs-many normalization a hand-rolled attribute-map parser
// would otherwise need: encoding/xml already gives a slice of one
// element when only one occurs.
type dictComposite struct {
	Items []dictItem `xml:",any"`
}

// dictItem is one <field>, <component>, or <group> reference. Group
// elements additionally carry their own nested body as raw XML,
// re-parsed on demand since xml:",any" does not descend into
// heterogeneous children automatically.
type dictItem struct {
	XMLName  xml.Name
	Name     string `xml:"name,attr"`
	Required string `xml:"required,attr"`
	Inner    []byte `xml:",innerxml"`
}

func (it dictItem) required() bool { return it.Required == "Y" }

// groupBody re-parses a <group> item's captured inner XML as a
// dictComposite, recovering its own ordered field/component/group
// children.
func (it dictItem) groupBody() (dictComposite, error) {
	var body dictComposite
	wrapped := "<group>" + string(it.Inner) + "</group>"
	if err := xml.Unmarshal([]byte(wrapped), &body); err != nil {
		return dictComposite{}, err
	}
	return body, nil
}
