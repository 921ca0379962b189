package pom

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/bombuilder/pkg/types"
)

const (
	pomNamespace   = "http://maven.apache.org/POM/4.0.0"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd"
)

// Render returns the POM document for m.
func Render(m *types.Manifest) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	project := doc.CreateElement("project")
	project.CreateAttr("xmlns", pomNamespace)
	project.CreateAttr("xmlns:xsi", xsiNamespace)
	project.CreateAttr("xsi:schemaLocation", schemaLocation)

	text(project, "modelVersion", m.ModelVersion)
	if m.Parent != nil {
		parent := project.CreateElement("parent")
		text(parent, "groupId", m.Parent.GroupID)
		text(parent, "artifactId", m.Parent.ArtifactID)
		text(parent, "version", m.Parent.Version)
		text(parent, "relativePath", m.Parent.RelativePath)
	}
	text(project, "groupId", m.GroupID)
	text(project, "artifactId", m.ArtifactID)
	text(project, "version", m.Version)
	text(project, "packaging", m.Packaging)
	text(project, "name", m.Name)
	text(project, "description", m.Description)
	text(project, "url", m.URL)

	writeLicenses(project, m.Licenses)
	writeDevelopers(project, m.Developers)
	writeSCM(project, m.SCM)
	writeProperties(project, m.Properties)
	writeDependencyManagement(project, m.Dependencies)

	doc.Indent(2)
	return doc.WriteToBytes()
}

// text adds a child element unless value is empty.
func text(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}

func writeLicenses(project *etree.Element, licenses []types.License) {
	if len(licenses) == 0 {
		return
	}
	el := project.CreateElement("licenses")
	for _, l := range licenses {
		license := el.CreateElement("license")
		text(license, "name", l.Name)
		text(license, "url", l.URL)
		text(license, "distribution", l.Distribution)
		text(license, "comments", l.Comments)
	}
}

func writeDevelopers(project *etree.Element, developers []types.Developer) {
	if len(developers) == 0 {
		return
	}
	el := project.CreateElement("developers")
	for _, d := range developers {
		dev := el.CreateElement("developer")
		text(dev, "id", d.ID)
		text(dev, "name", d.Name)
		text(dev, "email", d.Email)
		text(dev, "organization", d.Organization)
	}
}

func writeSCM(project *etree.Element, scm *types.SCM) {
	if scm == nil || scm.IsZero() {
		return
	}
	el := project.CreateElement("scm")
	text(el, "connection", scm.Connection)
	text(el, "developerConnection", scm.DeveloperConnection)
	text(el, "tag", scm.Tag)
	text(el, "url", scm.URL)
}

func writeProperties(project *etree.Element, props *types.Properties) {
	if props.Len() == 0 {
		return
	}
	el := project.CreateElement("properties")
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		el.CreateElement(key).SetText(value)
	}
}

func writeDependencyManagement(project *etree.Element, deps []types.ManagedDependency) {
	mgmt := project.CreateElement("dependencyManagement")
	list := mgmt.CreateElement("dependencies")
	for _, d := range deps {
		dep := list.CreateElement("dependency")
		text(dep, "groupId", d.GroupID)
		text(dep, "artifactId", d.ArtifactID)
		text(dep, "version", d.Version)
		text(dep, "type", d.Type)
		text(dep, "classifier", d.Classifier)
		if len(d.Exclusions) == 0 {
			continue
		}
		exclusions := dep.CreateElement("exclusions")
		for _, e := range d.Exclusions {
			ex := exclusions.CreateElement("exclusion")
			text(ex, "groupId", e.GroupID)
			text(ex, "artifactId", e.ArtifactID)
		}
	}
}
