// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

// autoStyle lets glamour pick a dark or light style from the terminal.
const autoStyle = "auto"

const (
	RuntimeNotFoundId Id = iota + 1
	MissingArtifactId
	LaunchFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal markdown using the glamour style at
// stylePath ("" or "auto" picks one from the terminal background).
func (i *Issue) Render(stylePath string) (string, error) {
	if stylePath == "" {
		stylePath = autoStyle
	}
	return render(i.markdown(), stylePath)
}

// Text returns the issue markdown unrendered, for surfaces that cannot
// display terminal styling such as a message box.
func (i *Issue) Text() string {
	return strings.TrimSpace(i.markdown())
}

func (i *Issue) markdown() string {
	md := string(i.mdMsg)
	if len(i.docLinks) == 0 && len(i.extLinks) == 0 {
		return md
	}
	var b strings.Builder
	b.WriteString(md)
	b.WriteString("\n\n## See also\n")
	for _, link := range append(slices.Clone(i.docLinks), i.extLinks...) {
		b.WriteString("- " + string(link) + "\n")
	}
	return b.String()
}

var (
	render = glamour.Render

	runtimeNotFoundIssue = &Issue{
		id: RuntimeNotFoundId,
		mdMsg: `
# Java runtime not found!

jarrunner could not locate the java executable it needs for this launch mode.
Terminal launches use ` + "`java`" + `, double-click launches use the windowed variant.

## Things you can try:
- Install a JDK and make sure its ` + "`bin`" + ` directory is on your PATH
- Point jarrunner at a specific JDK:
~~~
$ jarrunner --cache-home=/path/to/jdk app.jar
~~~

- Or set it once in your jarrunner configuration:
~~~cue
runtime_home: "/path/to/jdk"
~~~`,
		extLinks: []HttpLink{"https://adoptium.net/"},
	}

	missingArtifactIssue = &Issue{
		id: MissingArtifactId,
		mdMsg: `
# No JAR file given!

jarrunner runs exactly one JAR file per invocation.

## Usage:
~~~
jarrunner [--disable-cache] [--cache-home=<jdk>] <app.jar> [args...]
~~~

## Things you can try:
- Pass the path of the JAR file as the first argument
- Associate ` + "`.jar`" + ` files with jarrunner so a double-click passes the file name
- Quote paths that contain spaces`,
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Failed to start the Java runtime!

The operating system refused to create the java process.

## Things you can try:
- Check that the java executable is not corrupted and can run on its own:
~~~
$ java -version
~~~

- Check file permissions on the JDK installation
- Run again with caching turned off to rule out a damaged cache file:
~~~
$ jarrunner --disable-cache app.jar
~~~`,
		extLinks: []HttpLink{"https://openjdk.org/jeps/514"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

jarrunner could not read its configuration file and continues with defaults.

## Configuration locations (in order of precedence):
1. ` + "`jarrunner.cue`" + ` next to the jarrunner executable
2. ` + "`<user config dir>/jarrunner/config.cue`" + `

## Things you can try:
- Check the CUE syntax of the file
- Remove unknown fields; only documented keys are accepted
- Override single values with ` + "`JARRUNNER_*`" + ` environment variables`,
	}

	issues = map[Id]*Issue{
		runtimeNotFoundIssue.Id():  runtimeNotFoundIssue,
		missingArtifactIssue.Id():  missingArtifactIssue,
		launchFailedIssue.Id():     launchFailedIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

// Values returns every known issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
