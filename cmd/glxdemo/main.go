package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"glxform/internal/config"
	"glxform/internal/demo"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 a_Position;
		in vec3 a_Color;
		uniform mat4 mvp;
		out vec3 v_Color;
		void main() {
			gl_Position = mvp * vec4(a_Position, 1.0);
			v_Color = a_Color;
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec3 v_Color;
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(v_Color, 1.0);
		}
	` + "\x00"
)

var glfwKeys = map[glfw.Key]demo.Key{
	glfw.KeyLeft:  demo.KeyLeft,
	glfw.KeyRight: demo.KeyRight,
	glfw.KeyUp:    demo.KeyUp,
	glfw.KeyDown:  demo.KeyDown,
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	demoName := flag.String("demo", "", "Scene to show: "+strings.Join(demo.Names(), ", "))
	width := flag.Int("width", 0, "Window width (default: 800)")
	height := flag.Int("height", 0, "Window height (default: 600)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Demo: *demoName})

	scene, err := demo.Lookup(cfg.Demo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := cfg.Title + " | " + scene.Name()
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatalln(err)
	}
	gl.UseProgram(program)

	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))

	mesh := scene.Mesh()
	vao := uploadMesh(program, mesh)

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	if err := scene.Resize(fbw, fbh); err != nil {
		log.Printf("%s: %v", scene.Name(), err)
	}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			window.SetShouldClose(true)
			return
		}
		k, ok := glfwKeys[key]
		if !ok {
			k = demo.KeyOther
		}
		if err := scene.OnKey(k); err != nil {
			log.Printf("%s: %v", scene.Name(), err)
		}
		log.Println(scene.Info())
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	startTime := glfw.GetTime()
	lastFrameTime := startTime
	lastFpsTime := startTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | %s", title, frameCount, scene.Info()))
			frameCount = 0
			lastFpsTime = currentTime
		}

		if err := scene.Update(currentTime-startTime, deltaTime); err != nil {
			log.Printf("%s: %v", scene.Name(), err)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)

		mvp := scene.Matrices().MVP()
		m := mvp.Mgl32()
		gl.UniformMatrix4fv(mvpUniform, 1, false, &m[0])

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(mesh.Count))

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// uploadMesh copies the interleaved vertex data into a VBO and describes it
// to the position and color attributes.
func uploadMesh(program uint32, mesh demo.Mesh) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Data)*4, gl.Ptr(mesh.Data), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("a_Position\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, int32(mesh.PositionSize), gl.FLOAT, false, stride, gl.PtrOffset(0))

	colorAttrib := uint32(gl.GetAttribLocation(program, gl.Str("a_Color\x00")))
	if mesh.ColorOffset >= 0 {
		gl.EnableVertexAttribArray(colorAttrib)
		gl.VertexAttribPointer(colorAttrib, 3, gl.FLOAT, false, stride, gl.PtrOffset(mesh.ColorOffset*4))
	} else {
		c := mesh.Color
		gl.DisableVertexAttribArray(colorAttrib)
		gl.VertexAttrib3f(colorAttrib, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	}

	return vao
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
