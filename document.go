package lightsetups

import (
	"fmt"

	"github.com/google/uuid"
)

type ObjectId string

// Grouping is a named container organizing scene objects. Groupings form a
// tree under the document root; names are not required to be unique.
type Grouping struct {
	Name     string
	children []*Grouping
	objects  []ObjectId
}

func (g *Grouping) Children() []*Grouping { return g.children }
func (g *Grouping) Objects() []ObjectId   { return g.objects }

// Document is an open scene document: a table of objects plus the grouping
// tree they are organized into. It stands in for the host's document model
// and is only ever touched from the host UI thread.
type Document struct {
	lights    map[ObjectId]*Light
	root      *Grouping
	groupings []*Grouping
}

func NewDocument() *Document {
	root := &Grouping{Name: "Scene"}
	return &Document{
		lights:    make(map[ObjectId]*Light),
		root:      root,
		groupings: []*Grouping{root},
	}
}

func (doc *Document) Root() *Grouping { return doc.root }

// AddLight inserts a light into the document's object table and returns
// its freshly minted id. The light is not attached to any grouping yet.
func (doc *Document) AddLight(light *Light) ObjectId {
	id := makeObjectId()
	doc.lights[id] = light
	return id
}

func (doc *Document) Light(id ObjectId) (*Light, bool) {
	l, ok := doc.lights[id]
	return l, ok
}

// NewGrouping creates a detached grouping. Duplicate names are allowed.
func (doc *Document) NewGrouping(name string) *Grouping {
	g := &Grouping{Name: name}
	doc.groupings = append(doc.groupings, g)
	return g
}

// AttachGrouping links child under parent. Both must belong to this document.
func (doc *Document) AttachGrouping(parent *Grouping, child *Grouping) error {
	if !doc.owns(parent) {
		return fmt.Errorf("grouping %q does not belong to this document", parent.Name)
	}
	if !doc.owns(child) {
		return fmt.Errorf("grouping %q does not belong to this document", child.Name)
	}
	parent.children = append(parent.children, child)
	return nil
}

// Attach links an object into a grouping by id.
func (doc *Document) Attach(g *Grouping, id ObjectId) error {
	if !doc.owns(g) {
		return fmt.Errorf("grouping %q does not belong to this document", g.Name)
	}
	if _, ok := doc.lights[id]; !ok {
		return fmt.Errorf("unknown object id %s", id)
	}
	g.objects = append(g.objects, id)
	return nil
}

// GroupingsNamed returns every grouping carrying the given name, in
// creation order.
func (doc *Document) GroupingsNamed(name string) []*Grouping {
	var res []*Grouping
	for _, g := range doc.groupings {
		if g.Name == name {
			res = append(res, g)
		}
	}
	return res
}

// LightsIn resolves a grouping's object ids to the lights among them.
func (doc *Document) LightsIn(g *Grouping) []*Light {
	var res []*Light
	for _, id := range g.objects {
		if l, ok := doc.lights[id]; ok {
			res = append(res, l)
		}
	}
	return res
}

func (doc *Document) LightCount() int { return len(doc.lights) }

func (doc *Document) owns(g *Grouping) bool {
	for _, owned := range doc.groupings {
		if owned == g {
			return true
		}
	}
	return false
}

func makeObjectId() ObjectId {
	return ObjectId(uuid.NewString())
}
