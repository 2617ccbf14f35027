package core

import "math"

// RGBToXYZ converts linear sRGB (D65) to CIE XYZ
func RGBToXYZ(c Vec3) Vec3 {
	return Vec3{
		X: 0.4123865632529917*c.X + 0.35759149092062537*c.Y + 0.18045049120356368*c.Z,
		Y: 0.21263682167732384*c.X + 0.7151829818412507*c.Y + 0.07218019648142547*c.Z,
		Z: 0.019330620152483987*c.X + 0.11919716364020845*c.Y + 0.9503725870054354*c.Z,
	}
}

// XYZToRGB converts CIE XYZ to linear sRGB (D65)
func XYZToRGB(c Vec3) Vec3 {
	return Vec3{
		X: 3.2410032329763587*c.X - 1.5373989694887855*c.Y - 0.4986158819963629*c.Z,
		Y: -0.9692242522025166*c.X + 1.875929983695176*c.Y + 0.041554226340084724*c.Z,
		Z: 0.055639419851975444*c.X - 0.20401120612390997*c.Y + 1.0571489771875335*c.Z,
	}
}

// SRGBEncode applies the sRGB transfer curve to a linear value
func SRGBEncode(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// SRGBDecode inverts SRGBEncode
func SRGBDecode(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// SRGBEncodeVec applies SRGBEncode per channel
func SRGBEncodeVec(c Vec3) Vec3 {
	return Vec3{SRGBEncode(c.X), SRGBEncode(c.Y), SRGBEncode(c.Z)}
}

// SRGBDecodeVec applies SRGBDecode per channel
func SRGBDecodeVec(c Vec3) Vec3 {
	return Vec3{SRGBDecode(c.X), SRGBDecode(c.Y), SRGBDecode(c.Z)}
}
