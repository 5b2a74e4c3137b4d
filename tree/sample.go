package tree

// SampleProject returns the built-in demo project shown when no directory is
// given on the command line.
func SampleProject() []*Node {
	return []*Node{
		{
			Kind:     Folder,
			Name:     "src",
			Expanded: true,
			Children: []*Node{
				{
					Kind:     File,
					Name:     "index.html",
					Language: "html",
					Content: `<!DOCTYPE html>
<html>
<head>
  <title>Demo</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <!-- main container -->
  <div class="app">
    <h1 id="title">Hello</h1>
    <p>Edit me.</p>
  </div>
  <script src="app.js">console.log("inline");</script>
</body>
</html>
`,
				},
				{
					Kind:     File,
					Name:     "styles.css",
					Language: "css",
					Content: `/* layout */
body {
  margin: 0;
  font-family: sans-serif;
  color: red;
}

.app {
  padding: 16px;
  max-width: 40rem;
}

#title {
  font-size: 2em;
}
`,
				},
				{
					Kind:     File,
					Name:     "app.js",
					Language: "js",
					Content: `// entry point
const greeting = "Hello, world";
let count = 0;

function render() {
  const el = document.querySelector("#title");
  el.textContent = greeting + " (" + count + ")";
}

for (let i = 0; i < 3; i++) {
  count += 1;
}

/* kick things off */
render();
`,
				},
			},
		},
		{
			Kind:     File,
			Name:     "README.md",
			Language: "md",
			Content: `# Demo project

A tiny sample project for the editor.

- ` + "`src/index.html`" + ` - markup
- ` + "`src/styles.css`" + ` - styling
- ` + "`src/app.js`" + ` - behavior
`,
		},
		{
			Kind:    File,
			Name:    "notes.txt",
			Content: "Plain text file.\nNo highlighting here.\n",
		},
	}
}
